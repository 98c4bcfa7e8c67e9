//go:build unit

package verification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"homeservice-booking/internal/domain/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeGenerator(t *testing.T) {
	g := NewRandomCodeGenerator()
	for i := 0; i < 200; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		assert.Len(t, code, CodeLength)
		assert.True(t, contact.ValidateVerificationCode(code).OK(), "code %q", code)
	}
}

func TestLogCodeSender(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogCodeSender(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, s.Send(context.Background(), "+212 6 12 34 56 78", "042137"))
	assert.Contains(t, buf.String(), "verification code issued")
	assert.Contains(t, buf.String(), "code=042137")
}
