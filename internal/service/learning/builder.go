package learning

import (
	"math/rand/v2"
	"sync"

	"github.com/phrazzld/flashcards-api/internal/domain"
)

// DefaultOptionCount is the number of options offered when the set has
// enough cards.
const DefaultOptionCount = 4

// Builder assembles questions from the cards of a set. It performs no I/O.
// A Builder is safe for concurrent use.
type Builder struct {
	mu          sync.Mutex
	rng         *rand.Rand
	optionCount int
}

// NewBuilder creates a Builder offering up to optionCount options per
// question. A nil src seeds a new PCG source from the runtime's random
// state; values of optionCount below 1 fall back to DefaultOptionCount.
func NewBuilder(optionCount int, src rand.Source) *Builder {
	if optionCount < 1 {
		optionCount = DefaultOptionCount
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Builder{
		rng:         rand.New(src),
		optionCount: optionCount,
	}
}

// OptionCount returns the maximum number of options per question.
func (b *Builder) OptionCount() int {
	return b.optionCount
}

// Build returns an open question for userID about a uniformly chosen card.
//
// The options hold the target card's answer plus distractors taken from a
// random permutation of the remaining cards, up to min(len(cards),
// OptionCount). Distractors whose answer text is already among the options
// are skipped, so option values are always distinct. Option order is
// shuffled. It returns a domain.ErrInvalidCardSide validation error for an
// unknown side and ErrSetEmpty when cards is empty.
func (b *Builder) Build(userID int64, cards []*domain.Card, side domain.CardSide) (*domain.Question, error) {
	if !side.Valid() {
		return nil, domain.NewValidationError("cardSide", "must be FRONT or BACK", domain.ErrInvalidCardSide)
	}
	if len(cards) == 0 {
		return nil, ErrSetEmpty
	}

	side = side.Resolve()
	answerSide := side.Opposite()
	want := min(len(cards), b.optionCount)

	b.mu.Lock()
	defer b.mu.Unlock()

	targetIdx := b.rng.IntN(len(cards))
	target := cards[targetIdx]

	options := make([]string, 0, want)
	options = append(options, target.Side(answerSide))
	seen := map[string]struct{}{options[0]: {}}

	for _, i := range b.rng.Perm(len(cards)) {
		if len(options) == want {
			break
		}
		if i == targetIdx {
			continue
		}
		text := cards[i].Side(answerSide)
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		options = append(options, text)
	}

	b.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return domain.NewQuestion(userID, target, side, options), nil
}
