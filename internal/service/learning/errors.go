package learning

import (
	"fmt"

	"github.com/phrazzld/flashcards-api/internal/service"
)

var (
	// ErrSetEmpty is returned when a question is requested for a set
	// without cards.
	ErrSetEmpty = fmt.Errorf("%w: set is empty", service.ErrInvalidState)

	// ErrQuestionClosed is returned when an answer is submitted to a
	// question that has already been answered.
	ErrQuestionClosed = fmt.Errorf("%w: question already closed", service.ErrInvalidState)
)
