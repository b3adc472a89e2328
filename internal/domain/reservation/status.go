package reservation

import (
	"strings"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httperr"
)

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func ValidStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusRejected,
		StatusCancelled,
	}
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Label is the customer-facing form of a status, e.g. "Confirmed".
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

// CanTransition allows any status to be set from any other. The only guard is
// a defensive membership check on the target value.
func CanTransition(current, next Status) error {
	if !IsValidStatus(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}
