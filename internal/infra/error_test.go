//go:build unit

package infra

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestWrapRepoErr(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}

	tests := []struct {
		name     string
		err      error
		kind     []RepositoryErrorKind
		wantKind RepositoryErrorKind
	}{
		{name: "generic failure", err: errors.New("connection reset"), wantKind: KindDBFailure},
		{name: "no documents", err: mongo.ErrNoDocuments, wantKind: KindNotFound},
		{name: "duplicate key", err: dup, wantKind: KindDuplicateKey},
		{name: "explicit kind wins", err: mongo.ErrNoDocuments, kind: []RepositoryErrorKind{KindInvalidID}, wantKind: KindInvalidID},
		{name: "no cause", err: nil, kind: []RepositoryErrorKind{KindNotFound}, wantKind: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, IsKind(err, tt.wantKind))
			assert.Contains(t, err.Error(), "op failed")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, IsKind(errors.New("boom"), KindDBFailure))
		assert.False(t, IsKind(nil, KindNotFound))
	})
}
