package info

import (
	"context"
	"strings"

	"agent-api/internal/domain/health"
)

// Usecase holds no state; every method is safe for concurrent use.
type Usecase struct{}

func NewUsecase() *Usecase { return &Usecase{} }

// Welcome returns the greeting payload and its informational message.
func (u *Usecase) Welcome(ctx context.Context) (string, string) {
	return WelcomeText, WelcomeMessage
}

func (u *Usecase) Health(ctx context.Context) health.Status {
	return health.Status{Status: health.StatusHealthy, Message: health.MessageRunning}
}

// Echo decodes a raw query string into key/value pairs, keeping the last
// occurrence of a repeated key. Pairs are split on '&' only and malformed
// escapes are kept as literal text, so no input pair is dropped. The result
// is never nil.
func (u *Usecase) Echo(ctx context.Context, rawQuery string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		out[unescapeForm(k)] = unescapeForm(v)
	}
	return out
}
