package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamePoolTakeUnique(t *testing.T) {
	names := []string{"Alpha", "Beta", "Gamma", "Delta"}
	pool := NewNamePool(names, 7)

	seen := make(map[string]bool)
	for range names {
		name, err := pool.Take()
		require.NoError(t, err)
		assert.False(t, seen[name], "name %q handed out twice", name)
		seen[name] = true
	}
	assert.Len(t, seen, len(names))

	_, err := pool.Take()
	assert.True(t, errors.Is(err, ErrNamePoolEmpty))
}

func TestNamePoolDeterministic(t *testing.T) {
	names := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}

	a := NewNamePool(names, 42)
	b := NewNamePool(names, 42)
	for range names {
		x, _ := a.Take()
		y, _ := b.Take()
		assert.Equal(t, x, y)
	}
}

func TestNamePoolDoesNotAliasInput(t *testing.T) {
	names := []string{"Alpha", "Beta"}
	pool := NewNamePool(names, 1)

	_, _ = pool.Take()

	assert.Equal(t, []string{"Alpha", "Beta"}, names)
	assert.Equal(t, 1, pool.Remaining())
}

func TestGenerateName(t *testing.T) {
	a := GenerateName()
	b := GenerateName()

	assert.Len(t, a, len("brewery-")+8)
	assert.NotEqual(t, a, b)
}
