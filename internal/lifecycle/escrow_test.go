package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
)

var (
	initiator    = address.Address{1}
	counterparty = address.Address{2}
	stranger     = address.Address{3}
)

func newTestEscrow(t *testing.T) *entities.Escrow {
	e, err := NewEscrow(initiator, EscrowTerms{
		Counterparty:       counterparty,
		InitiatorAmount:    10,
		CounterpartyAmount: 20,
		CreatedAt:          100,
		ExpiresAt:          200,
	})
	require.NoError(t, err)
	return e
}

func TestNewEscrow(t *testing.T) {
	tt := []struct {
		name  string
		terms EscrowTerms
		err   error
	}{
		{name: "valid", terms: EscrowTerms{InitiatorAmount: 1, CounterpartyAmount: 1, CreatedAt: 1, ExpiresAt: 2}},
		{name: "zero_initiator_amount", terms: EscrowTerms{CounterpartyAmount: 1, CreatedAt: 1, ExpiresAt: 2}, err: errs.ErrInvalidAmount},
		{name: "zero_counterparty_amount", terms: EscrowTerms{InitiatorAmount: 1, CreatedAt: 1, ExpiresAt: 2}, err: errs.ErrInvalidAmount},
		{name: "expires_at_created_at", terms: EscrowTerms{InitiatorAmount: 1, CounterpartyAmount: 1, CreatedAt: 2, ExpiresAt: 2}, err: errs.ErrInvalidExpiry},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			e, err := NewEscrow(initiator, tc.terms)
			assert.Equal(t, tc.err, err)
			if tc.err == nil {
				assert.Equal(t, entities.EscrowCreated, e.Status)
				assert.False(t, e.Accepted)
				assert.False(t, e.Completed)
			}
		})
	}
}

func TestEscrow_Lifecycle(t *testing.T) {
	e := newTestEscrow(t)

	assert.Equal(t, errs.ErrEscrowNotAccepted, CompleteEscrow(e, initiator, 150))
	assert.Equal(t, errs.ErrNotOwner, AcceptEscrow(e, stranger, 150))
	assert.Equal(t, errs.ErrNotOwner, AcceptEscrow(e, initiator, 150))

	require.NoError(t, AcceptEscrow(e, counterparty, 150))
	assert.Equal(t, entities.EscrowAccepted, e.Status)
	assert.Equal(t, entities.Some(int64(150)), e.AcceptedAt)

	assert.Equal(t, errs.ErrEscrowAlreadyAccepted, AcceptEscrow(e, counterparty, 160))
	assert.Equal(t, errs.ErrNotOwner, CompleteEscrow(e, counterparty, 160))

	require.NoError(t, CompleteEscrow(e, initiator, 170))
	assert.Equal(t, entities.EscrowCompleted, e.Status)
	assert.Equal(t, entities.Some(int64(170)), e.CompletedAt)

	assert.Equal(t, errs.ErrEscrowAlreadyCompleted, CompleteEscrow(e, initiator, 180))
}

func TestAcceptEscrow_Expired(t *testing.T) {
	e := newTestEscrow(t)

	assert.Equal(t, errs.ErrEscrowExpired, AcceptEscrow(e, counterparty, 201))
	assert.False(t, e.Accepted)
	assert.False(t, e.AcceptedAt.IsSome())

	require.NoError(t, AcceptEscrow(e, counterparty, 200))
}
