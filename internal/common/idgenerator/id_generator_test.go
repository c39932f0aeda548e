package idgenerator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("time ordered uuid", func(t *testing.T) {
		generator := New()
		id := generator.Generate()

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		assert.NotEqual(t, id, generator.Generate())
	})

	t.Run("falls back to random uuid", func(t *testing.T) {
		generator := &IDGenerator{newUUID: func() (uuid.UUID, error) {
			return uuid.Nil, assert.AnError
		}}

		parsed, err := uuid.Parse(generator.Generate())
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
	})
}
