package model

// OAuthAccount binds an external identity to a local user. One user may hold
// at most one account per provider.
type OAuthAccount struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	Provider       string `json:"provider"`
	ProviderUserID string `json:"provider_user_id"`
	Email          string `json:"email"`
	Ctime          int64  `json:"ctime"`
	Mtime          int64  `json:"mtime"`
}
