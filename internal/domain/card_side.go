package domain

import "strings"

// CardSide selects which face of a card is shown as the prompt.
type CardSide string

// Card sides.
const (
	CardSideFront CardSide = "FRONT"
	CardSideBack  CardSide = "BACK"
)

// Resolve returns the effective side, defaulting the zero value to BACK.
func (s CardSide) Resolve() CardSide {
	if s == "" {
		return CardSideBack
	}
	return s
}

// Valid reports whether s is FRONT, BACK or the zero value.
func (s CardSide) Valid() bool {
	switch s {
	case "", CardSideFront, CardSideBack:
		return true
	}
	return false
}

// Opposite returns the other face of the card.
func (s CardSide) Opposite() CardSide {
	if s.Resolve() == CardSideFront {
		return CardSideBack
	}
	return CardSideFront
}

// ParseCardSide converts a string into a CardSide. The empty string
// resolves to BACK; matching is case-insensitive.
func ParseCardSide(s string) (CardSide, error) {
	switch CardSide(strings.ToUpper(strings.TrimSpace(s))) {
	case "", CardSideBack:
		return CardSideBack, nil
	case CardSideFront:
		return CardSideFront, nil
	default:
		return "", NewValidationError("cardSide", "must be FRONT or BACK", ErrInvalidCardSide)
	}
}
