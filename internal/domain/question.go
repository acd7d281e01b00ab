package domain

import (
	"slices"
	"time"
)

// Question is a single-use multiple-choice prompt derived from one card
// for one user. It is open while Answer is nil and closed once an answer
// has been recorded. Closing is one-way.
type Question struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	CardID        int64      `json:"card_id"`
	CardSide      CardSide   `json:"card_side"`
	Prompt        string     `json:"question"`
	CorrectAnswer string     `json:"correct_answer"`
	Options       []string   `json:"options"`
	Answer        *string    `json:"answer,omitempty"`
	Correct       bool       `json:"correct"`
	AnsweredAt    *time.Time `json:"answered_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewQuestion creates an open question asking the given side of card.
// The prompt is the requested side, the correct answer is the opposite one.
// options must already contain the correct answer.
func NewQuestion(userID int64, card *Card, side CardSide, options []string) *Question {
	side = side.Resolve()
	return &Question{
		UserID:        userID,
		CardID:        card.ID,
		CardSide:      side,
		Prompt:        card.Side(side),
		CorrectAnswer: card.Side(side.Opposite()),
		Options:       options,
		CreatedAt:     time.Now().UTC(),
	}
}

// IsClosed reports whether an answer has been recorded.
func (q *Question) IsClosed() bool {
	return q.Answer != nil
}

// IsOwnedBy reports whether the question belongs to userID.
func (q *Question) IsOwnedBy(userID int64) bool {
	return q.UserID == userID
}

// HasOption reports whether s is one of the presented options.
func (q *Question) HasOption(s string) bool {
	return slices.Contains(q.Options, s)
}

// Close records answer, scores it with byte-exact comparison and stamps
// the answer time. All three lifecycle fields are set together.
// It returns ErrQuestionClosed when the question was already answered.
func (q *Question) Close(answer string, now time.Time) error {
	if q.IsClosed() {
		return ErrQuestionClosed
	}

	answeredAt := now.UTC()
	q.Correct = answer == q.CorrectAnswer
	q.Answer = &answer
	q.AnsweredAt = &answeredAt
	return nil
}
