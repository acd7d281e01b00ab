// Package domain contains the core business entities, value objects, and
// domain logic of the flashcards application: users, card sets, cards,
// study questions and the difficulty ladder that tracks how well a card is
// known. It is independent of any specific infrastructure or delivery
// mechanism.
package domain
