package model

// Scope carries the authenticated caller identity through use cases.
type Scope struct {
	UserID      int64
	Email       string
	DisplayName string
	AvatarURL   string
}

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
