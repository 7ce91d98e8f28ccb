package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bizzauto/gateway/internal/backend"
)

type staticTokens string

func (s staticTokens) Token(_ context.Context) (string, error) {
	return string(s), nil
}

func TestClient_URLJoining(t *testing.T) {
	t.Parallel()

	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	tests := map[string]struct {
		base string
		path string
	}{
		"no slashes":        {server.URL, "api/clients"},
		"leading slash":     {server.URL, "/api/clients"},
		"trailing slash":    {server.URL + "/", "api/clients"},
		"both slashes":      {server.URL + "/", "/api/clients"},
		"double base slash": {server.URL + "//", "//api/clients"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := backend.NewClient(tt.base, nil)

			res := c.Get(context.Background(), tt.path)
			require.True(t, res.OK(), res.Error)
			require.Equal(t, "/api/clients", gotPath)
		})
	}
}

func TestClient_EnvelopeTotality(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Acme"}`))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/detail", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"bad"}`))
	})
	mux.HandleFunc("/message", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"broken"}`))
	})
	mux.HandleFunc("/bare", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/garbage", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"truncated":`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := backend.NewClient(server.URL, nil)
	ctx := context.Background()

	tests := map[string]struct {
		path       string
		wantStatus int
		wantOK     bool
		wantError  string
	}{
		"2xx json":        {"/json", http.StatusOK, true, ""},
		"2xx empty":       {"/empty", http.StatusNoContent, true, ""},
		"4xx detail":      {"/detail", http.StatusNotFound, false, "bad"},
		"4xx message":     {"/message", http.StatusBadRequest, false, "broken"},
		"5xx no body":     {"/bare", http.StatusInternalServerError, false, "error occurred"},
		"2xx bad payload": {"/garbage", http.StatusOK, false, "invalid JSON in response body"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res := c.Get(ctx, tt.path)

			require.Equal(t, tt.wantStatus, res.Status)
			require.Equal(t, tt.wantOK, res.OK())

			if tt.wantOK {
				require.Empty(t, res.Error)
				require.NoError(t, res.Err())
			} else {
				require.Nil(t, res.Data)
				require.Equal(t, tt.wantError, res.Error)

				var apiErr *backend.Error
				require.ErrorAs(t, res.Err(), &apiErr)
				require.Equal(t, tt.wantStatus, apiErr.Status)
			}
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := backend.NewClient(server.URL, nil)

	res := c.Get(context.Background(), "/api/clients")

	require.Equal(t, 0, res.Status)
	require.False(t, res.OK())
	require.NotEmpty(t, res.Error)
	require.Nil(t, res.Data)
}

func TestClient_AuthHeader(t *testing.T) {
	t.Parallel()

	var gotAuth []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	ctx := context.Background()

	c := backend.NewClient(server.URL, staticTokens("tok"))
	require.True(t, c.Get(ctx, "/a").OK())
	require.True(t, c.Post(ctx, "/a", map[string]string{"k": "v"}).OK())
	require.True(t, c.Put(ctx, "/a", map[string]string{"k": "v"}).OK())
	require.True(t, c.Delete(ctx, "/a").OK())

	require.Len(t, gotAuth, 4)
	for _, h := range gotAuth {
		require.Equal(t, "Bearer tok", h)
	}

	gotAuth = nil

	anon := backend.NewClient(server.URL, staticTokens(""))
	require.True(t, anon.Get(ctx, "/a").OK())
	require.Equal(t, []string{""}, gotAuth)
}

func TestClient_TypedResources(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"company_id":"123e4567-e89b-12d3-a456-426614174000","name":"Brake pads","sale_price":150,"stock_quantity":12}]`))
	})
	mux.HandleFunc("POST /api/meta_whatsapp/send-meta-whatsapp", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Server configuration error: Meta WhatsApp environment variables are not set."}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := backend.NewClient(server.URL, nil)
	ctx := context.Background()

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Brake pads", products[0].Name)
	require.Equal(t, 12, products[0].StockQuantity)
	require.True(t, products[0].SalePrice.Equal(decimal.NewFromInt(150)))

	_, err = c.SendWhatsappMessage(ctx, "+15550001111", "hello")
	require.Error(t, err)

	var apiErr *backend.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Contains(t, apiErr.Message, "Meta WhatsApp environment variables")
}
