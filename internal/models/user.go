package models

// User is an account holder. Users are created at registration and never
// edited or deleted afterwards.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // hex digest, never the plaintext
	Name         string `json:"name"`
	Surname      string `json:"surname"`
}
