package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"impag-tasks/internal/model"
	"impag-tasks/internal/user"
	"impag-tasks/pkg/log"
)

const tokenCacheSize = 256

// AuthConfig holds the Google identity settings for the auth middleware.
type AuthConfig struct {
	// GoogleClientID is the OAuth client id tokens must be issued for.
	// Empty disables verification entirely; every request is rejected.
	GoogleClientID string
	// AllowedEmails is the whitelist of addresses allowed in,
	// case-insensitive. Empty means any verified email is allowed.
	AllowedEmails []string
}

type cachedIdentity struct {
	scope   model.Scope
	expires int64
}

type Middleware struct {
	l       log.Logger
	cfg     AuthConfig
	users   user.UseCase
	allowed map[string]bool
	cache   *lru.Cache[string, cachedIdentity]
}

func New(l log.Logger, cfg AuthConfig, users user.UseCase) Middleware {
	allowed := make(map[string]bool, len(cfg.AllowedEmails))
	for _, e := range cfg.AllowedEmails {
		allowed[normalizeEmail(e)] = true
	}

	cache, err := lru.New[string, cachedIdentity](tokenCacheSize)
	if err != nil {
		panic(err)
	}

	return Middleware{
		l:       l,
		cfg:     cfg,
		users:   users,
		allowed: allowed,
		cache:   cache,
	}
}
