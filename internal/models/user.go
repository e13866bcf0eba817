package models

// User is an API account holder (table `usuarios`).
type User struct {
	ID           int    `json:"id"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // never leaves the server
}
