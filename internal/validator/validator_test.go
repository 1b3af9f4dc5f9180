package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsername(t *testing.T) {
	t.Run("accepts a plain username", func(t *testing.T) {
		v, ferr := Username("walter")
		assert.Nil(t, ferr)
		assert.Equal(t, "walter", v)
	})

	t.Run("rejects empty and whitespace-only values", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t\n"} {
			_, ferr := Username(input)
			require.NotNil(t, ferr, "input %q", input)
			assert.Equal(t, "Username is empty.", ferr.Message)
		}
	})

	t.Run("rejects values containing spaces", func(t *testing.T) {
		_, ferr := Username("walter white")
		require.NotNil(t, ferr)
		assert.Equal(t, "Username cannot contain space.", ferr.Message)
		assert.Equal(t, "username", ferr.Field)
	})
}

func TestPassword(t *testing.T) {
	_, ferr := Password("  ")
	require.NotNil(t, ferr)
	assert.Equal(t, "Password is empty.", ferr.Message)

	v, ferr := Password("s3cret")
	assert.Nil(t, ferr)
	assert.Equal(t, "s3cret", v)
}

func TestString(t *testing.T) {
	t.Run("blank check runs on the trimmed value", func(t *testing.T) {
		_, ferr := String("     ", "title", 5, 45)
		require.NotNil(t, ferr)
		assert.Equal(t, "Title is empty.", ferr.Message)
	})

	t.Run("length bounds apply to the raw value", func(t *testing.T) {
		// 2 letters padded with spaces to length 6: not blank, passes min.
		v, ferr := String("  ab  ", "title", 5, 45)
		assert.Nil(t, ferr)
		assert.Equal(t, "  ab  ", v)
	})

	t.Run("minimum boundary", func(t *testing.T) {
		_, ferr := String(strings.Repeat("a", 4), "title", 5, 45)
		require.NotNil(t, ferr)
		assert.Equal(t, "Title must be at least 5 characters long.", ferr.Message)

		_, ferr = String(strings.Repeat("a", 5), "title", 5, 45)
		assert.Nil(t, ferr)
	})

	t.Run("maximum boundary", func(t *testing.T) {
		_, ferr := String(strings.Repeat("a", 45), "title", 5, 45)
		assert.Nil(t, ferr)

		_, ferr = String(strings.Repeat("a", 46), "title", 5, 45)
		require.NotNil(t, ferr)
		assert.Equal(t, "Title must not exceed 45 characters.", ferr.Message)
	})

	t.Run("message capitalizes the label", func(t *testing.T) {
		_, ferr := String("", "briefing", 10, 100)
		require.NotNil(t, ferr)
		assert.Equal(t, "Briefing is empty.", ferr.Message)
		assert.Equal(t, "briefing", ferr.Field)
	})
}

func TestPicture(t *testing.T) {
	_, ferr := Picture("")
	require.NotNil(t, ferr)
	assert.Equal(t, "Picture is empty.", ferr.Message)

	v, ferr := Picture("cover.jpg")
	assert.Nil(t, ferr)
	assert.Equal(t, "cover.jpg", v)
}

type staticExister struct {
	known map[uuid.UUID]bool
	err   error
}

func (s staticExister) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.known[id], nil
}

func TestCategory(t *testing.T) {
	knownID := uuid.New()
	store := staticExister{known: map[uuid.UUID]bool{knownID: true}}

	t.Run("nil id is reported as empty", func(t *testing.T) {
		ferr, err := Category(context.Background(), store, uuid.Nil)
		require.NoError(t, err)
		require.NotNil(t, ferr)
		assert.Equal(t, "Category is empty", ferr.Message)
	})

	t.Run("unknown id is reported as nonexistent", func(t *testing.T) {
		ferr, err := Category(context.Background(), store, uuid.New())
		require.NoError(t, err)
		require.NotNil(t, ferr)
		assert.Equal(t, "Category does not exist.", ferr.Message)
	})

	t.Run("known id passes", func(t *testing.T) {
		ferr, err := Category(context.Background(), store, knownID)
		require.NoError(t, err)
		assert.Nil(t, ferr)
	})

	t.Run("storage failure is an error, not a field error", func(t *testing.T) {
		broken := staticExister{err: assert.AnError}
		ferr, err := Category(context.Background(), broken, knownID)
		assert.Error(t, err)
		assert.Nil(t, ferr)
	})
}
