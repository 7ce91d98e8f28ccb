package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bizzauto/gateway/internal/backend"
	"github.com/bizzauto/gateway/internal/entity"
)

// @title BizzAuto Gateway API
// @version 1.0
// @description Development gateway for the BizzAuto front-end: local mock expense routes and a WhatsApp relay.
// @BasePath /

type Service interface {
	Expenses() []entity.DailyExpense
	CreateExpense(e entity.DailyExpense) entity.DailyExpense
	PatchExpense(id int, patch entity.ExpensePatch) (entity.DailyExpense, error)
	RemoveExpense(id int) error
	Summary() entity.ExpenseSummary
	ExportCSV() []byte
	SendWhatsapp(ctx context.Context, to, body string) (json.RawMessage, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// HealthHandler reports gateway liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// AllExpenses lists the stored expenses, newest first.
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} entity.DailyExpense
// @Router /api/expenses/all [get]
func (h *Handler) AllExpenses(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, h.s.Expenses())
}

// AddExpense creates an expense from a JSON or multipart form payload.
// @Summary Create expense
// @Tags expenses
// @Accept json,mpfd
// @Produce json
// @Success 201 {object} entity.DailyExpense
// @Failure 400 {object} ErrorResponse
// @Router /api/expenses/add [post]
func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var expense entity.DailyExpense

	if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		err := r.ParseMultipartForm(4 << 20)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid form payload")
			return
		}

		amount, _ := strconv.ParseFloat(r.FormValue("amount"), 64)

		expense = entity.DailyExpense{
			Date:          r.FormValue("date"),
			Description:   r.FormValue("description"),
			Category:      r.FormValue("category"),
			Amount:        amount,
			PaymentMethod: r.FormValue("paymentMethod"),
			Receipt:       r.FormValue("receipt") != "",
		}
	} else {
		// The historical route tolerated unreadable JSON and created an
		// empty record; keep that contract.
		_ = json.NewDecoder(r.Body).Decode(&expense)
		expense.ID = 0
	}

	created := h.s.CreateExpense(expense)

	SendJSON(ctx, w, http.StatusCreated, created)
}

// UpdateExpense merge-patches a stored expense.
// @Summary Update expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} entity.DailyExpense
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/expenses/{id} [put]
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid expense id")
		return
	}

	var patch entity.ExpensePatch

	_ = json.NewDecoder(r.Body).Decode(&patch)

	updated, err := h.s.PatchExpense(id, patch)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Update failed")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, updated)
}

// DeleteExpense removes a stored expense.
// @Summary Delete expense
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/expenses/{id} [delete]
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid expense id")
		return
	}

	err = h.s.RemoveExpense(id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Delete failed")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]bool{"success": true})
}

// SummaryHandler reports today/month/year spend totals.
// @Summary Expense summary
// @Tags expenses
// @Produce json
// @Success 200 {object} entity.ExpenseSummary
// @Router /api/expenses/summary [get]
func (h *Handler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, h.s.Summary())
}

// ExportExpenses streams the store as CSV. Only the csv format is
// implemented; anything else answers an empty 204, as the historical route
// did. TODO: decide whether unknown formats should become a 400 once the
// backend grows a second export format.
// @Summary Export expenses
// @Tags expenses
// @Produce text/csv
// @Param format query string false "Export format" default(csv)
// @Success 200 {string} string "CSV payload"
// @Success 204 "Format not implemented"
// @Router /api/expenses/export [get]
func (h *Handler) ExportExpenses(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	if format != "csv" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(h.s.ExportCSV())
}

type SendMessageRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendMetaWhatsapp relays a message to the remote backend's Meta WhatsApp
// integration, forwarding its detail and status on failure.
// @Summary Relay WhatsApp message
// @Tags whatsapp
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/send-meta-whatsapp [post]
func (h *Handler) SendMetaWhatsapp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SendMessageRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendDetail(ctx, w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	resp, err := h.s.SendWhatsapp(ctx, req.To, req.Body)
	if err != nil {
		var backendErr *backend.Error

		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			sendDetail(ctx, w, http.StatusBadRequest, `Missing "to" or "body" in request`)
		case errors.As(err, &backendErr) && backendErr.Status > 0:
			sendDetail(ctx, w, backendErr.Status, backendErr.Message)
		default:
			sendDetail(ctx, w, http.StatusInternalServerError, "Internal server error in gateway route")
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp)
}

// sendDetail writes the backend's conventional error body shape, which the
// front-end reads as error.response.data.detail.
func sendDetail(ctx context.Context, w http.ResponseWriter, code int, detail string) {
	SendJSON(ctx, w, code, map[string]string{"detail": detail})
}
