//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body before it is sent.
type Mutation func(body map[string]any)

// DtoMap turns a typed request into a JSON object so tests can send shapes
// the typed request cannot express, such as masked strings or wrong types.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(b, &body))

	for _, m := range muts {
		m(body)
	}
	return body
}

// Field replaces a value; nil removes the key, which differs from sending null.
func Field(key string, value any) Mutation {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}

// Null sends an explicit JSON null for key.
func Null(key string) Mutation {
	return func(body map[string]any) {
		body[key] = nil
	}
}
