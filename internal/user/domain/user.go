package domain

type ID int64

type User struct {
	ID           ID
	Name         string
	Email        string
	Profile      string
	PasswordHash string
}

// Credentials carries the minimum needed to check a login attempt.
type Credentials struct {
	ID           ID
	PasswordHash string
}
