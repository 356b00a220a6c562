package model

// User is the public identity shape. It is the only user view allowed
// to appear in a response.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Disabled bool   `json:"disabled"`
}

// UserCredential is the stored record backing a User. The hash never
// crosses the API boundary.
type UserCredential struct {
	User
	PasswordHash string `json:"-"`
}
