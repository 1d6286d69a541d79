// internal/model/user.go
package model

// UserContext carries the identity claims forwarded by the API gateway. It is
// never persisted on its own; only the resolved user id ends up on the record.
type UserContext struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
