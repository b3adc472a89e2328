package reservation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/reservation"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

var errNotFound = errors.New("record not found")

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ======================================================
// Repository fake
// ======================================================

type fakeRepo struct {
	mu    sync.Mutex
	store map[string]models.Reservation

	created []models.Reservation
	updated []models.Reservation

	createErr error
	getErr    error
	updateErr error
	listErr   error
}

func newFakeRepo(seed ...models.Reservation) *fakeRepo {
	f := &fakeRepo{store: make(map[string]models.Reservation)}
	for _, res := range seed {
		f.store[res.ID] = res
	}
	return f
}

func (f *fakeRepo) CreateReservation(ctx context.Context, res *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if res.ID == "" {
		res.ID = "generated-id"
	}
	f.created = append(f.created, *res)
	f.store[res.ID] = *res
	return nil
}

func (f *fakeRepo) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	res, ok := f.store[id]
	if !ok {
		return nil, errNotFound
	}
	cp := res
	return &cp, nil
}

func (f *fakeRepo) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Reservation, 0, len(f.store))
	for _, res := range f.store {
		out = append(out, res)
	}
	return out, nil
}

func (f *fakeRepo) UpdateReservation(ctx context.Context, res *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, *res)
	f.store[res.ID] = *res
	return nil
}

func (f *fakeRepo) stored(id string) models.Reservation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[id]
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// Notifier fake
// ======================================================

type notifyCall struct {
	Reservation models.Reservation
	Status      domain.Status
	Note        string
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
	err   error
}

func (f *fakeNotifier) StatusChanged(
	ctx context.Context,
	res *models.Reservation,
	status domain.Status,
	note string,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, notifyCall{
		Reservation: *res,
		Status:      status,
		Note:        note,
	})
	return f.err
}

func (f *fakeNotifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var _ StatusNotifier = (*fakeNotifier)(nil)

// ======================================================
// Sender fake (for the real Notifier)
// ======================================================

type sendCall struct {
	TemplateID string
	Params     map[string]string
}

type fakeSender struct {
	mu    sync.Mutex
	calls []sendCall
	sent  chan sendCall
	err   error
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan sendCall, 10)}
}

func (f *fakeSender) Send(ctx context.Context, templateID string, params map[string]string) error {
	f.mu.Lock()
	f.calls = append(f.calls, sendCall{TemplateID: templateID, Params: params})
	f.mu.Unlock()

	f.sent <- sendCall{TemplateID: templateID, Params: params}
	return f.err
}

func (f *fakeSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
