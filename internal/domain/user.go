package domain

import "strings"

// MaxEmailLength matches the width of the users.email column.
const MaxEmailLength = 255

// User is a registered account. It owns zero or more tasks and is never
// mutated after registration.
type User struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"` // Never expose password hash in JSON
}

// NewUser creates a User with an already-hashed password.
// The ID is assigned by the store on insert.
func NewUser(email, hashedPassword string) (*User, error) {
	user := &User{
		Email:          email,
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Email == "" {
		return NewValidationError("email", "no puede estar vacío", ErrValidation)
	}
	if len(u.Email) > MaxEmailLength {
		return NewValidationError("email", "es demasiado largo", ErrInvalidEmail)
	}
	at := strings.IndexByte(u.Email, '@')
	if at <= 0 || at == len(u.Email)-1 {
		return NewValidationError("email", "tiene un formato inválido", ErrInvalidEmail)
	}
	if u.HashedPassword == "" {
		return NewValidationError("hashed_password", "no puede estar vacío", ErrEmptyHashedPassword)
	}
	return nil
}
