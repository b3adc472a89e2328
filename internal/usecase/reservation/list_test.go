package reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReservations(t *testing.T) {
	first := pendingReservation()
	second := pendingReservation()
	second.ID = "res-2"
	repo := newFakeRepo(first, second)

	uc := NewListReservations(repo)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestListReservations_ReadFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection reset")

	uc := NewListReservations(repo)

	out, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)
}
