package user

// EnsureUserInput carries the identity claims used to provision a user.
type EnsureUserInput struct {
	Email       string
	DisplayName string
	AvatarURL   string
}
