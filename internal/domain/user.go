package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// User validation errors
var (
	ErrEmptyNickname       = fmt.Errorf("%w: nickname cannot be empty", ErrValidation)
	ErrNicknameTooLong     = fmt.Errorf("%w: nickname must be at most 50 characters long", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 12 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

const (
	// MinPasswordLength is the minimum accepted plaintext password length.
	MinPasswordLength = 12
	// MaxPasswordLength is the bcrypt input limit.
	MaxPasswordLength = 72
	// MaxNicknameLength bounds the nickname column.
	MaxNicknameLength = 50
)

// User represents a registered user of the flashcards application.
// Users author card sets and answer questions generated from them.
type User struct {
	ID             int64     `json:"id"`
	Nickname       string    `json:"nickname"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only held between request and hashing
	HashedPassword string    `json:"-"`
	Enabled        bool      `json:"enabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates an enabled User with the given nickname, email and
// plaintext password. The caller hashes the password before storing the user.
// The ID is assigned by the store.
func NewUser(nickname, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Nickname:  strings.TrimSpace(nickname),
		Email:     strings.TrimSpace(email),
		Password:  password,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Nickname == "" {
		return ErrEmptyNickname
	}
	if utf8.RuneCountInString(u.Nickname) > MaxNicknameLength {
		return ErrNicknameTooLong
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validateEmailFormat requires a non-empty local part and a dotted domain.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}

	domainPart := email[at+1:]
	if len(domainPart) < 3 {
		return false
	}

	dot := strings.LastIndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}
