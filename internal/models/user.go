package models

// UserInfo is the identity provider's profile response.
type UserInfo struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Picture  string `json:"picture"`
}

// User is the authorizer state. Loading is true initially and while a
// profile fetch is in flight; identity fields are populated only after
// a successful fetch. Session mirrors the stored session token.
type User struct {
	UserInfo
	Session string
	Loading bool
}
