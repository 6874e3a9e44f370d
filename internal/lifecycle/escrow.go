package lifecycle

import (
	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/guard"
)

// EscrowTerms are the creation time fields of an escrow.
type EscrowTerms struct {
	Counterparty       address.Address
	Group              address.Address
	InitiatorToken     address.Address
	InitiatorAmount    uint64
	CounterpartyToken  address.Address
	CounterpartyAmount uint64
	CreatedAt          int64
	ExpiresAt          int64
}

// NewEscrow creates an escrow in the created state.
func NewEscrow(initiator address.Address, t EscrowTerms) (*entities.Escrow, error) {
	if t.InitiatorAmount == 0 || t.CounterpartyAmount == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if t.ExpiresAt <= t.CreatedAt {
		return nil, errs.ErrInvalidExpiry
	}

	return &entities.Escrow{
		Initiator:          initiator,
		Counterparty:       t.Counterparty,
		Group:              t.Group,
		InitiatorToken:     t.InitiatorToken,
		InitiatorAmount:    t.InitiatorAmount,
		CounterpartyToken:  t.CounterpartyToken,
		CounterpartyAmount: t.CounterpartyAmount,
		Status:             entities.EscrowCreated,
		CreatedAt:          t.CreatedAt,
		ExpiresAt:          t.ExpiresAt,
	}, nil
}

// AcceptEscrow moves e from created to accepted.
func AcceptEscrow(e *entities.Escrow, caller address.Address, now int64) error {
	if err := guard.Owns(e.Counterparty, caller); err != nil {
		return err
	}
	if e.Accepted {
		return errs.ErrEscrowAlreadyAccepted
	}
	if err := guard.NotAfter(now, e.ExpiresAt, errs.ErrEscrowExpired); err != nil {
		return err
	}

	e.Accepted = true
	e.AcceptedAt = entities.Some(now)
	e.Status = entities.EscrowAccepted

	return nil
}

// CompleteEscrow moves e from accepted to completed.
func CompleteEscrow(e *entities.Escrow, caller address.Address, now int64) error {
	if err := guard.Owns(e.Initiator, caller); err != nil {
		return err
	}
	if e.Completed {
		return errs.ErrEscrowAlreadyCompleted
	}
	if !e.Accepted {
		return errs.ErrEscrowNotAccepted
	}

	// TODO: settle the trade: release the initiator deposit to the counterparty and collect
	// the counterparty side. Completion is a state change only until settlement is defined.
	e.Completed = true
	e.CompletedAt = entities.Some(now)
	e.Status = entities.EscrowCompleted

	return nil
}
