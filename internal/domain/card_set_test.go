package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardSet(t *testing.T) {
	t.Parallel()

	set, err := NewCardSet(1, " French ", "basics", "")
	require.NoError(t, err)
	assert.Equal(t, "French", set.Name)
	assert.Equal(t, SetTypePublic, set.Type)

	_, err = NewCardSet(0, "French", "", SetTypePublic)
	assert.ErrorIs(t, err, ErrSetAuthorInvalid)

	_, err = NewCardSet(1, "", "", SetTypePublic)
	assert.ErrorIs(t, err, ErrSetNameEmpty)

	_, err = NewCardSet(1, "French", "", "SECRET")
	assert.ErrorIs(t, err, ErrInvalidSetType)
}

func TestCardSet_Visibility(t *testing.T) {
	t.Parallel()

	public := &CardSet{AuthorID: 1, Type: SetTypePublic}
	private := &CardSet{AuthorID: 1, Type: SetTypePrivate}

	assert.True(t, public.VisibleTo(2))
	assert.True(t, private.VisibleTo(1))
	assert.False(t, private.VisibleTo(2))
	assert.True(t, private.IsOwnedBy(1))
	assert.False(t, public.IsOwnedBy(2))
}

func TestCardSet_SameAs(t *testing.T) {
	t.Parallel()

	a := &CardSet{ID: 1, AuthorID: 1, Name: "French"}
	assert.True(t, a.SameAs(&CardSet{ID: 2, AuthorID: 1, Name: "French"}))
	assert.False(t, a.SameAs(&CardSet{AuthorID: 2, Name: "French"}))
	assert.False(t, a.SameAs(nil))
}

func TestCardSet_Update(t *testing.T) {
	t.Parallel()

	set := &CardSet{ID: 1, AuthorID: 1, Name: "French", Type: SetTypePublic}
	require.NoError(t, set.Update("Spanish", "new", SetTypePrivate))
	assert.Equal(t, "Spanish", set.Name)
	assert.Equal(t, SetTypePrivate, set.Type)

	assert.ErrorIs(t, set.Update("", "x", SetTypePublic), ErrSetNameEmpty)
	assert.Equal(t, "Spanish", set.Name)
}

func TestParseSetType(t *testing.T) {
	t.Parallel()

	st, err := ParseSetType("private")
	require.NoError(t, err)
	assert.Equal(t, SetTypePrivate, st)

	st, err = ParseSetType("")
	require.NoError(t, err)
	assert.Equal(t, SetTypePublic, st)

	_, err = ParseSetType("hidden")
	assert.ErrorIs(t, err, ErrInvalidSetType)
}
