package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/contacts/models"
	"contactbook/pkg/platform/sentinel"
)

func TestDocumentMapping(t *testing.T) {
	alice, err := models.NewRecord("Alice")
	require.NoError(t, err)
	require.NoError(t, alice.AddPhone("0501234567"))
	require.NoError(t, alice.AddPhone("0509876543"))
	require.NoError(t, alice.AddBirthday("25.12.1990"))

	bob, err := models.NewRecord("Bob")
	require.NoError(t, err)
	require.NoError(t, bob.AddPhone("0671112233"))

	book := models.NewAddressBook(alice, bob)

	t.Run("flattens in insertion order", func(t *testing.T) {
		docs := ToDocuments(book)
		assert.Equal(t, []Document{
			{Name: "Alice", Phones: []string{"0501234567", "0509876543"}, Birthday: "25.12.1990"},
			{Name: "Bob", Phones: []string{"0671112233"}},
		}, docs)
	})

	t.Run("rebuilds an equal book", func(t *testing.T) {
		restored, err := FromDocuments(ToDocuments(book))
		require.NoError(t, err)
		assert.Equal(t, ToDocuments(book), ToDocuments(restored))
	})

	t.Run("empty document list is an empty book", func(t *testing.T) {
		restored, err := FromDocuments(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, restored.Len())
	})

	t.Run("invalid phone is corrupt", func(t *testing.T) {
		_, err := FromDocuments([]Document{{Name: "Eve", Phones: []string{"12"}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel.ErrCorrupt)
	})

	t.Run("invalid birthday is corrupt", func(t *testing.T) {
		_, err := FromDocuments([]Document{{Name: "Eve", Birthday: "1990-01-01"}})
		assert.ErrorIs(t, err, sentinel.ErrCorrupt)
	})

	t.Run("empty name is corrupt", func(t *testing.T) {
		_, err := FromDocuments([]Document{{Name: ""}})
		assert.ErrorIs(t, err, sentinel.ErrCorrupt)
	})
}
