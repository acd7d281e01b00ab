package learning_test

import (
	"context"
	"database/sql"
	"slices"
	"sync"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/service/learning"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// memStore is an in-memory stand-in for the card set, card and question
// stores. It ignores transactions; every write is visible immediately.
type memStore struct {
	mu        sync.Mutex
	sets      map[int64]*domain.CardSet
	cards     map[int64]*domain.Card
	questions map[int64]*domain.Question
	nextID    int64

	difficultyUpdates int
}

func newMemStore() *memStore {
	return &memStore{
		sets:      make(map[int64]*domain.CardSet),
		cards:     make(map[int64]*domain.Card),
		questions: make(map[int64]*domain.Question),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) addSet(authorID int64, name string, pairs ...[2]string) (*domain.CardSet, []*domain.Card) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set := &domain.CardSet{ID: m.id(), AuthorID: authorID, Name: name, Type: domain.SetTypePrivate}
	m.sets[set.ID] = set

	cards := make([]*domain.Card, 0, len(pairs))
	for _, p := range pairs {
		card := &domain.Card{ID: m.id(), SetID: set.ID, Front: p[0], Back: p[1], Difficulty: domain.DifficultyHard}
		m.cards[card.ID] = card
		cards = append(cards, card)
	}
	return set, cards
}

func (m *memStore) card(id int64) *domain.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *m.cards[id]
	return &c
}

func (m *memStore) question(id int64) *domain.Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := *m.questions[id]
	return &q
}

type memSets struct{ *memStore }

func (s memSets) GetByID(_ context.Context, id int64) (*domain.CardSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[id]
	if !ok {
		return nil, store.ErrSetNotFound
	}
	cp := *set
	return &cp, nil
}

func (s memSets) WithTx(*sql.Tx) learning.SetRepository { return s }

type memCards struct{ *memStore }

func (s memCards) GetForUpdate(_ context.Context, id int64) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	cp := *card
	return &cp, nil
}

func (s memCards) ListBySet(_ context.Context, setID int64) ([]*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Card
	for _, c := range s.cards {
		if c.SetID == setID {
			cp := *c
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Card) int { return int(a.ID - b.ID) })
	return out, nil
}

func (s memCards) UpdateDifficulty(_ context.Context, id int64, d domain.Difficulty) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[id]
	if !ok {
		return store.ErrCardNotFound
	}
	card.Difficulty = d
	s.difficultyUpdates++
	return nil
}

func (s memCards) WithTx(*sql.Tx) learning.CardRepository { return s }

type memQuestions struct{ *memStore }

func (s memQuestions) Create(_ context.Context, q *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = s.id()
	cp := *q
	cp.Options = slices.Clone(q.Options)
	s.questions[q.ID] = &cp
	return nil
}

func (s memQuestions) GetForUpdate(_ context.Context, id int64) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return nil, store.ErrQuestionNotFound
	}
	cp := *q
	return &cp, nil
}

func (s memQuestions) Close(_ context.Context, q *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.questions[q.ID]
	if !ok {
		return store.ErrQuestionNotFound
	}
	if stored.IsClosed() {
		return store.ErrQuestionClosed
	}
	cp := *q
	s.questions[q.ID] = &cp
	return nil
}

func (s memQuestions) WithTx(*sql.Tx) learning.QuestionRepository { return s }
