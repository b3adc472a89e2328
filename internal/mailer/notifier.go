package mailer

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/config"
	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/reservation"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/lib/logger/sl"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/validators"
)

// ErrInvalidRecipient marks a locally skipped send: the stored customer email
// has no "@" so the sender is never invoked. Not a store error.
var ErrInvalidRecipient = errors.New("invalid recipient email address")

const (
	fallbackNote = "No additional notes provided."
	receivedNote = "Your reservation has been received and is pending confirmation."
)

type Templates struct {
	StatusUpdate string
	Accepted     string
	Rejected     string
	Contact      string
}

func TemplatesFromConfig(cfg *config.Config) Templates {
	return Templates{
		StatusUpdate: cfg.MailTemplateStatus,
		Accepted:     cfg.MailTemplateAccepted,
		Rejected:     cfg.MailTemplateRejected,
		Contact:      cfg.MailTemplateContact,
	}
}

// Notifier builds template parameters for customer email and hands them to
// the injected Sender. Failures never roll back committed store state.
type Notifier struct {
	log       *slog.Logger
	sender    Sender
	templates Templates
	fromName  string
}

func NewNotifier(log *slog.Logger, sender Sender, templates Templates, fromName string) *Notifier {
	return &Notifier{
		log:       log,
		sender:    sender,
		templates: templates,
		fromName:  fromName,
	}
}

// StatusChanged notifies the customer after a committed status transition.
// Acceptance and rejection get their own templates with the full reservation
// details; every other status uses the generic status-update template.
func (n *Notifier) StatusChanged(
	ctx context.Context,
	res *models.Reservation,
	status domain.Status,
	note string,
) error {

	if !validators.HasRecipientAddress(res.CustomerEmail) {
		n.log.Warn("skipping status email, recipient has no address",
			slog.String("reservation_id", res.ID),
		)
		return ErrInvalidRecipient
	}

	switch status {
	case domain.StatusConfirmed:
		return n.sendDecision(ctx, n.templates.Accepted, res, note)
	case domain.StatusRejected:
		return n.sendDecision(ctx, n.templates.Rejected, res, note)
	}

	params := map[string]string{
		"to_email":           res.CustomerEmail,
		"from_name":          n.fromName,
		"reservation_status": status.Label(),
		"notes":              noteOrFallback(note),
	}

	return n.send(ctx, n.templates.StatusUpdate, res, params)
}

// ReservationReceived is the intake confirmation. Fire-and-forget; callers
// enqueue it through the Dispatcher.
func (n *Notifier) ReservationReceived(ctx context.Context, res *models.Reservation) error {
	if !validators.HasRecipientAddress(res.CustomerEmail) {
		return ErrInvalidRecipient
	}

	params := map[string]string{
		"to_email":           res.CustomerEmail,
		"from_name":          n.fromName,
		"reservation_status": domain.StatusPending.Label(),
		"notes":              receivedNote,
	}

	return n.send(ctx, n.templates.StatusUpdate, res, params)
}

// ContactMessage forwards a contact-form submission to the restaurant inbox.
func (n *Notifier) ContactMessage(ctx context.Context, name, email, message string) error {
	params := map[string]string{
		"from_name":  name,
		"from_email": email,
		"message":    message,
	}

	if err := n.sender.Send(ctx, n.templates.Contact, params); err != nil {
		n.log.Warn("failed to send contact message", sl.Err(err))
		return err
	}
	return nil
}

func (n *Notifier) sendDecision(
	ctx context.Context,
	templateID string,
	res *models.Reservation,
	note string,
) error {

	params := map[string]string{
		"to_name":          res.CustomerName,
		"to_email":         res.CustomerEmail,
		"reservation_date": domain.FormatDateLong(res.ReservationDate),
		"reservation_time": res.ReservationTime,
		"party_size":       strconv.Itoa(res.PartySize),
		"notes":            noteOrFallback(note),
	}

	return n.send(ctx, templateID, res, params)
}

func (n *Notifier) send(
	ctx context.Context,
	templateID string,
	res *models.Reservation,
	params map[string]string,
) error {

	if err := n.sender.Send(ctx, templateID, params); err != nil {
		n.log.Warn("failed to send reservation email",
			slog.String("reservation_id", res.ID),
			slog.String("template_id", templateID),
			sl.Err(err),
		)
		return err
	}
	return nil
}

func noteOrFallback(note string) string {
	if note == "" {
		return fallbackNote
	}
	return note
}
