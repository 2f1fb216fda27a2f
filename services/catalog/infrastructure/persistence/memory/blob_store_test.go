package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_LoadSave(t *testing.T) {
	ctx := context.Background()
	s := NewBlobStore()

	_, found, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	in := []byte(`[1]`)
	require.NoError(t, s.Save(ctx, in))
	in[1] = '2'

	out, found, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[1]`, string(out), "store keeps its own copy")
	assert.Equal(t, 1, s.Saves())
}

func TestBlobStore_FailSaves(t *testing.T) {
	ctx := context.Background()
	s := NewBlobStoreWith([]byte(`[]`))
	boom := errors.New("disk full")
	s.FailSaves(boom)

	assert.ErrorIs(t, s.Save(ctx, []byte(`[1]`)), boom)
	out, _, _ := s.Load(ctx)
	assert.Equal(t, `[]`, string(out))

	s.FailSaves(nil)
	require.NoError(t, s.Save(ctx, []byte(`[1]`)))
	assert.Equal(t, 1, s.Saves())
}
