package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bizzauto/gateway/pkg/logger"
)

// TokenSource yields the current bearer credential. An empty token means the
// request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthRoundTripper attaches the session credential and request ID to every
// outgoing request. The token is looked up once per request; a failed lookup
// sends the request unauthenticated and leaves rejection to the backend.
type AuthRoundTripper struct {
	Transport http.RoundTripper
	Tokens    TokenSource
}

func NewAuthRoundTripper(transport http.RoundTripper, tokens TokenSource) *AuthRoundTripper {
	return &AuthRoundTripper{Transport: transport, Tokens: tokens}
}

func (a *AuthRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	if a.Tokens != nil {
		token, err := a.Tokens.Token(ctx)
		if err != nil {
			slog.WarnContext(ctx, "session token lookup failed", "error", err)
		} else if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := a.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response", "response", fmt.Sprintf("%s %s %d", r.Method, r.URL.Redacted(), resp.StatusCode))

	return resp, nil
}
