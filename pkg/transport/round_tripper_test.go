package transport_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bizzauto/gateway/pkg/transport"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(_ context.Context) (string, error) {
	return s.token, s.err
}

func TestAuthRoundTripper_AttachesBearer(t *testing.T) {
	t.Parallel()

	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewAuthRoundTripper(http.DefaultTransport, staticTokens{token: "tok-123"}),
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestAuthRoundTripper_NoToken(t *testing.T) {
	t.Parallel()

	tests := map[string]transport.TokenSource{
		"empty token":   staticTokens{},
		"lookup error":  staticTokens{err: errors.New("session store down")},
		"no source set": nil,
	}

	for name, tokens := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var sawAuthHeader bool

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, sawAuthHeader = r.Header["Authorization"]
				w.WriteHeader(http.StatusOK)
			}))
			t.Cleanup(server.Close)

			client := &http.Client{
				Timeout:   time.Second * 10,
				Transport: transport.NewAuthRoundTripper(http.DefaultTransport, tokens),
			}

			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			require.False(t, sawAuthHeader)
		})
	}
}
