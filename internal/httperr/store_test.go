package httperr

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestStoreMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "permission denied gets friendly copy",
			err:  &pgconn.PgError{Code: "42501", Message: "permission denied for table reservations"},
			want: "Unable to create reservation. Please try again later.",
		},
		{
			name: "invalid datetime gets friendly copy",
			err:  &pgconn.PgError{Code: "22007", Message: "invalid input syntax for type time"},
			want: "Please select a valid time for your reservation.",
		},
		{
			name: "other pg codes pass the raw message through",
			err:  &pgconn.PgError{Code: "23505", Message: "duplicate key value"},
			want: "duplicate key value",
		},
		{
			name: "non-pg errors pass through",
			err:  errors.New("connection refused"),
			want: "connection refused",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StoreMessage(tc.err))
		})
	}
}

func TestIsPermissionDenied(t *testing.T) {
	assert.True(t, IsPermissionDenied(&pgconn.PgError{Code: "42501"}))
	assert.False(t, IsPermissionDenied(&pgconn.PgError{Code: "22007"}))
	assert.False(t, IsPermissionDenied(errors.New("permission denied")))
}

func TestBusinessError(t *testing.T) {
	err := ErrBusiness("invalid_status")

	assert.True(t, IsBusiness(err, "invalid_status"))
	assert.False(t, IsBusiness(err, "other_code"))
	assert.Equal(t, "invalid_status", BusinessCode(err))
	assert.Empty(t, BusinessCode(errors.New("plain")))
}
