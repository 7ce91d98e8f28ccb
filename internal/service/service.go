package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bizzauto/gateway/internal/entity"
)

type Repository interface {
	All() []entity.DailyExpense
	Add(e entity.DailyExpense) entity.DailyExpense
	Update(id int, patch entity.ExpensePatch) (entity.DailyExpense, bool)
	Delete(id int) bool
}

// Messenger relays WhatsApp messages through the remote backend.
type Messenger interface {
	SendWhatsappMessage(ctx context.Context, to, body string) (json.RawMessage, error)
}

type Service struct {
	repo      Repository
	messenger Messenger
	now       func() time.Time
}

func New(repo Repository, messenger Messenger) *Service {
	return NewWithClock(repo, messenger, time.Now)
}

// NewWithClock pins the clock used by summary and date defaulting.
func NewWithClock(repo Repository, messenger Messenger, now func() time.Time) *Service {
	return &Service{
		repo:      repo,
		messenger: messenger,
		now:       now,
	}
}

func (s *Service) Expenses() []entity.DailyExpense {
	return s.repo.All()
}

// CreateExpense normalizes the record the way the mock API always has:
// missing date becomes today, timestamps are cut down to YYYY-MM-DD, and the
// payment method defaults to cash.
func (s *Service) CreateExpense(e entity.DailyExpense) entity.DailyExpense {
	if e.Date == "" {
		e.Date = s.now().Format(time.DateOnly)
	}

	if i := strings.IndexByte(e.Date, 'T'); i >= 0 {
		e.Date = e.Date[:i]
	}

	if e.PaymentMethod == "" {
		e.PaymentMethod = entity.PaymentMethodCash
	}

	return s.repo.Add(e)
}

func (s *Service) PatchExpense(id int, patch entity.ExpensePatch) (entity.DailyExpense, error) {
	updated, ok := s.repo.Update(id, patch)
	if !ok {
		return entity.DailyExpense{}, fmt.Errorf("expense %d: %w", id, entity.ErrNotFound)
	}

	return updated, nil
}

func (s *Service) RemoveExpense(id int) error {
	if !s.repo.Delete(id) {
		return fmt.Errorf("expense %d: %w", id, entity.ErrNotFound)
	}

	return nil
}

// Summary sums amounts for today, the calendar month and the calendar year by
// prefix-matching the YYYY-MM-DD date strings.
func (s *Service) Summary() entity.ExpenseSummary {
	now := s.now()

	day := now.Format(time.DateOnly)
	month := now.Format("2006-01")
	year := now.Format("2006")

	var summary entity.ExpenseSummary

	for _, e := range s.repo.All() {
		if e.Date == day {
			summary.Today += e.Amount
		}

		if strings.HasPrefix(e.Date, month) {
			summary.Month += e.Amount
		}

		if strings.HasPrefix(e.Date, year) {
			summary.Year += e.Amount
		}
	}

	return summary
}

// ExportCSV renders all records with the fixed column order. Only the
// description is quoted; inner quotes are doubled.
func (s *Service) ExportCSV() []byte {
	var b strings.Builder

	b.WriteString("id,date,description,category,amount,paymentMethod,receipt")

	for _, e := range s.repo.All() {
		b.WriteByte('\n')
		b.WriteString(strconv.Itoa(e.ID))
		b.WriteByte(',')
		b.WriteString(e.Date)
		b.WriteByte(',')
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(e.Description, `"`, `""`))
		b.WriteByte('"')
		b.WriteByte(',')
		b.WriteString(e.Category)
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(e.Amount, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(e.PaymentMethod)
		b.WriteByte(',')
		b.WriteString(strconv.FormatBool(e.Receipt))
	}

	return []byte(b.String())
}

// SendWhatsapp validates and relays a message to the backend. The returned
// payload is the Graph API response passed through untouched.
func (s *Service) SendWhatsapp(ctx context.Context, to, body string) (json.RawMessage, error) {
	if to == "" || body == "" {
		return nil, fmt.Errorf(`missing "to" or "body" in request: %w`, entity.ErrInvalidArgument)
	}

	return s.messenger.SendWhatsappMessage(ctx, to, body)
}
