package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bizzauto/gateway/internal/api"
	"github.com/bizzauto/gateway/internal/backend"
	"github.com/bizzauto/gateway/internal/entity"
	"github.com/bizzauto/gateway/internal/repository"
	"github.com/bizzauto/gateway/internal/service"
	"github.com/bizzauto/gateway/internal/session"
)

func newServer(t *testing.T, repo *repository.Repository, messenger service.Messenger) *httptest.Server {
	t.Helper()

	now := func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}

	h := api.NewHandler(service.NewWithClock(repo, messenger, now))

	server := httptest.NewServer(api.NewRouter(h, api.NewMiddleware()))
	t.Cleanup(server.Close)

	return server
}

func TestHandler_AddExpense_FormData(t *testing.T) {
	t.Parallel()

	server := newServer(t, repository.NewEmpty(), nil)

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("date", "2025-06-01"))
	require.NoError(t, mw.WriteField("amount", "250"))
	require.NoError(t, mw.WriteField("category", "Fuel"))
	require.NoError(t, mw.WriteField("paymentMethod", "Cash"))
	require.NoError(t, mw.WriteField("description", "Diesel"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(server.URL+"/api/expenses/add", mw.FormDataContentType(), &buf)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.DailyExpense

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, entity.DailyExpense{
		ID:            1,
		Date:          "2025-06-01",
		Description:   "Diesel",
		Category:      "Fuel",
		Amount:        250,
		PaymentMethod: "Cash",
		Receipt:       false,
	}, created)
}

func TestHandler_ExpenseLifecycle(t *testing.T) {
	t.Parallel()

	server := newServer(t, repository.NewEmpty(), nil)
	client := server.Client()

	resp, err := http.Post(server.URL+"/api/expenses/add", "application/json",
		strings.NewReader(`{"date":"2025-06-01","description":"Diesel","category":"Fuel","amount":250,"paymentMethod":"Cash"}`))
	require.NoError(t, err)

	var created entity.DailyExpense

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Patch only the amount; everything else must survive.
	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/expenses/1", strings.NewReader(`{"amount":500}`))
	require.NoError(t, err)

	resp, err = client.Do(req)
	require.NoError(t, err)

	var updated entity.DailyExpense

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 500.0, updated.Amount)
	require.Equal(t, "Diesel", updated.Description)
	require.Equal(t, "Fuel", updated.Category)

	req, err = http.NewRequest(http.MethodDelete, server.URL+"/api/expenses/1", nil)
	require.NoError(t, err)

	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Second delete finds nothing.
	req, err = http.NewRequest(http.MethodDelete, server.URL+"/api/expenses/1", nil)
	require.NoError(t, err)

	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/expenses/all")
	require.NoError(t, err)

	var all []entity.DailyExpense

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	resp.Body.Close()
	require.Empty(t, all)
}

func TestHandler_Summary(t *testing.T) {
	t.Parallel()

	repo := repository.NewEmpty()
	repo.Add(entity.DailyExpense{Date: "2025-06-01", Amount: 50})
	repo.Add(entity.DailyExpense{Date: "2025-05-20", Amount: 100})

	server := newServer(t, repo, nil)

	resp, err := http.Get(server.URL + "/api/expenses/summary")
	require.NoError(t, err)

	defer resp.Body.Close()

	var summary entity.ExpenseSummary

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	require.Equal(t, entity.ExpenseSummary{Today: 50, Month: 50, Year: 150}, summary)
}

func TestHandler_Export(t *testing.T) {
	t.Parallel()

	repo := repository.NewEmpty()
	repo.Add(entity.DailyExpense{Date: "2025-06-01", Description: "Diesel", Category: "Fuel", Amount: 250, PaymentMethod: "Cash"})

	server := newServer(t, repo, nil)

	resp, err := http.Get(server.URL + "/api/expenses/export?format=csv")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	require.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	require.Equal(t, "id,date,description,category,amount,paymentMethod,receipt", strings.Split(string(body), "\n")[0])

	// Any other format is an unimplemented empty 204.
	resp, err = http.Get(server.URL + "/api/expenses/export?format=pdf")
	require.NoError(t, err)

	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, body)
}

func TestHandler_SendMetaWhatsapp(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/meta_whatsapp/send-meta-whatsapp", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"Error calling Meta API"}`))
	}))
	t.Cleanup(upstream.Close)

	messenger := backend.NewClient(upstream.URL, nil)
	server := newServer(t, repository.NewEmpty(), messenger)

	resp, err := http.Post(server.URL+"/api/send-meta-whatsapp", "application/json",
		strings.NewReader(`{"to":"+15550001111","body":"hello"}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Error calling Meta API", body["detail"])

	// Validation failures never reach the upstream.
	resp, err = http.Post(server.URL+"/api/send-meta-whatsapp", "application/json", strings.NewReader(`{"to":"","body":""}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_RelayForwardsCallerCredential(t *testing.T) {
	t.Parallel()

	var gotAuth string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	t.Cleanup(upstream.Close)

	messenger := backend.NewClient(upstream.URL, session.New(""))
	server := newServer(t, repository.NewEmpty(), messenger)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/send-meta-whatsapp",
		strings.NewReader(`{"to":"+15550001111","body":"hello"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer caller-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Bearer caller-token", gotAuth)
}
