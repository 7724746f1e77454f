package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_EmptyDSN(t *testing.T) {
	db, err := Open(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, db)
}

func TestConstraintHelpers_NonDriverErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "nil error", err: nil},
		{name: "plain error", err: errors.New("boom")},
		{name: "wrapped plain error", err: fmt.Errorf("failed to insert: %w", errors.New("boom"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsUniqueViolation(tt.err))
			assert.False(t, IsForeignKeyViolation(tt.err))
			assert.False(t, IsIntegrityViolation(tt.err))
		})
	}
}
