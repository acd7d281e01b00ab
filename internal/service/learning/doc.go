// Package learning turns a user's card sets into multiple-choice questions
// and scores the answers.
//
// CreateQuestion picks a card uniformly at random from a set the caller
// authored, surrounds its answer with distractors drawn from the other
// cards of the set and persists an open domain.Question. SubmitAnswer closes
// an open question exactly once and moves the source card one rung along
// the difficulty ladder (see domain.NextDifficulty). Both operations run in a
// single database transaction.
package learning
