package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Card set validation errors
var (
	ErrSetNameEmpty     = fmt.Errorf("%w: set name cannot be empty", ErrValidation)
	ErrSetNameTooLong   = fmt.Errorf("%w: set name must be at most 100 characters long", ErrValidation)
	ErrSetAuthorInvalid = fmt.Errorf("%w: set author ID must be positive", ErrValidation)
)

// MaxSetNameLength bounds the set name column.
const MaxSetNameLength = 100

// SetType controls who can see a set.
type SetType string

// Set visibility values.
const (
	SetTypePublic  SetType = "PUBLIC"
	SetTypePrivate SetType = "PRIVATE"
)

// ParseSetType converts a string into a SetType. The empty string
// resolves to PUBLIC.
func ParseSetType(s string) (SetType, error) {
	switch SetType(strings.ToUpper(s)) {
	case "":
		return SetTypePublic, nil
	case SetTypePublic:
		return SetTypePublic, nil
	case SetTypePrivate:
		return SetTypePrivate, nil
	default:
		return "", NewValidationError("type", "must be PUBLIC or PRIVATE", ErrInvalidSetType)
	}
}

// CardSet is a named collection of cards owned by one author.
// Two sets are the same when they share author and name.
type CardSet struct {
	ID          int64     `json:"id"`
	AuthorID    int64     `json:"author_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        SetType   `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Cards is populated only when a set is created with initial cards or
	// explicitly loaded with them.
	Cards []*Card `json:"cards,omitempty"`
}

// NewCardSet creates a CardSet for the given author.
func NewCardSet(authorID int64, name, description string, setType SetType) (*CardSet, error) {
	if setType == "" {
		setType = SetTypePublic
	}

	now := time.Now().UTC()
	set := &CardSet{
		AuthorID:    authorID,
		Name:        strings.TrimSpace(name),
		Description: description,
		Type:        setType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// Validate checks if the CardSet has valid data.
func (s *CardSet) Validate() error {
	if s.AuthorID <= 0 {
		return ErrSetAuthorInvalid
	}
	if s.Name == "" {
		return ErrSetNameEmpty
	}
	if utf8.RuneCountInString(s.Name) > MaxSetNameLength {
		return ErrSetNameTooLong
	}
	if s.Type != SetTypePublic && s.Type != SetTypePrivate {
		return ErrInvalidSetType
	}
	return nil
}

// IsOwnedBy reports whether userID authored the set.
func (s *CardSet) IsOwnedBy(userID int64) bool {
	return s.AuthorID == userID
}

// VisibleTo reports whether userID may read the set.
// Public sets are visible to everyone, private sets only to their author.
func (s *CardSet) VisibleTo(userID int64) bool {
	return s.Type == SetTypePublic || s.IsOwnedBy(userID)
}

// SameAs reports whether two sets share identity (author and name).
func (s *CardSet) SameAs(other *CardSet) bool {
	if other == nil {
		return false
	}
	return s.AuthorID == other.AuthorID && s.Name == other.Name
}

// Update replaces the mutable attributes of the set.
func (s *CardSet) Update(name, description string, setType SetType) error {
	if setType == "" {
		setType = SetTypePublic
	}

	updated := *s
	updated.Name = strings.TrimSpace(name)
	updated.Description = description
	updated.Type = setType
	if err := updated.Validate(); err != nil {
		return err
	}

	s.Name = updated.Name
	s.Description = updated.Description
	s.Type = updated.Type
	s.UpdatedAt = time.Now().UTC()
	return nil
}
