package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
)

const CodeLength = 6

var codeUpperBound = big.NewInt(1_000_000)

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

// Generate returns a zero-padded six digit code.
func (g *RandomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeUpperBound)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}

// LogCodeSender writes codes to the log instead of an SMS gateway.
type LogCodeSender struct {
	logger *slog.Logger
}

func NewLogCodeSender(logger *slog.Logger) *LogCodeSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogCodeSender{logger: logger}
}

func (s *LogCodeSender) Send(ctx context.Context, phone, code string) error {
	s.logger.InfoContext(ctx, "verification code issued", "phone", phone, "code", code)
	return nil
}
