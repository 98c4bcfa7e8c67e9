//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body decoded into a map.
type Mutation func(body map[string]any)

// BodyMap round-trips v through JSON so a test can send a request body that a
// typed DTO could not express (missing keys, wrong types).
func BodyMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, m := range muts {
		m(body)
	}
	return body
}

func With(key string, value any) Mutation {
	return func(body map[string]any) { body[key] = value }
}

func Without(key string) Mutation {
	return func(body map[string]any) { delete(body, key) }
}
