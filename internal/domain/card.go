package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Card-specific validation errors
var (
	// ErrCardFrontEmpty is returned when a card's front text is empty.
	ErrCardFrontEmpty = fmt.Errorf("%w: card front cannot be empty", ErrValidation)

	// ErrCardBackEmpty is returned when a card's back text is empty.
	ErrCardBackEmpty = fmt.Errorf("%w: card back cannot be empty", ErrValidation)

	// ErrCardTextTooLong is returned when either side exceeds MaxCardTextLength.
	ErrCardTextTooLong = fmt.Errorf("%w: card text must be at most 500 characters long", ErrValidation)

	// ErrCardSetIDInvalid is returned when a card has no owning set.
	ErrCardSetIDInvalid = fmt.Errorf("%w: card set ID must be positive", ErrValidation)
)

// MaxCardTextLength bounds each side of a card.
const MaxCardTextLength = 500

// Card is a front/back text pair belonging to exactly one set.
// Two cards in the same set with the same front are duplicates.
type Card struct {
	ID         int64      `json:"id"`
	SetID      int64      `json:"set_id"`
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewCard creates a Card in the given set. New cards start at HARD.
func NewCard(setID int64, front, back string) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		SetID:      setID,
		Front:      front,
		Back:       back,
		Difficulty: DifficultyHard,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.SetID <= 0 {
		return ErrCardSetIDInvalid
	}
	if c.Front == "" {
		return ErrCardFrontEmpty
	}
	if c.Back == "" {
		return ErrCardBackEmpty
	}
	if utf8.RuneCountInString(c.Front) > MaxCardTextLength ||
		utf8.RuneCountInString(c.Back) > MaxCardTextLength {
		return ErrCardTextTooLong
	}
	if !c.Difficulty.Valid() {
		return ErrInvalidDifficulty
	}
	return nil
}

// SameAs reports whether two cards share identity (front text and set).
func (c *Card) SameAs(other *Card) bool {
	if other == nil {
		return false
	}
	return c.SetID == other.SetID && c.Front == other.Front
}

// UpdateText replaces both sides of the card. Difficulty is kept.
func (c *Card) UpdateText(front, back string) error {
	updated := *c
	updated.Front = front
	updated.Back = back
	if err := updated.Validate(); err != nil {
		return err
	}

	c.Front = front
	c.Back = back
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Side returns the text shown on the given side of the card.
func (c *Card) Side(side CardSide) string {
	if side.Resolve() == CardSideFront {
		return c.Front
	}
	return c.Back
}
