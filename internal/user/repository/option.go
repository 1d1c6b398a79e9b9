package repository

// CreateUserOptions holds parameters for inserting a new user row.
type CreateUserOptions struct {
	Email       string
	DisplayName string
	AvatarURL   string
	Role        string
}
