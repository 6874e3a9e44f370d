package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/guard"
	"github.com/chumchon-net/chumchon/internal/lifecycle"
	"github.com/chumchon-net/chumchon/internal/service"
	"github.com/chumchon-net/chumchon/internal/storage"
)

func (s *srv) CreateEscrow(ctx context.Context, r service.CreateEscrowRequest) (address.Address, error) {
	return s.runCreate(ctx, OpCreateEscrow, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Initiator); err != nil {
			return nil, err
		}

		e, err := lifecycle.NewEscrow(r.Initiator, lifecycle.EscrowTerms{
			Counterparty:       r.Counterparty,
			Group:              r.Group,
			InitiatorAmount:    r.InitiatorAmount,
			CounterpartyToken:  r.CounterpartyToken,
			CounterpartyAmount: r.CounterpartyAmount,
			CreatedAt:          r.CreatedAt,
			ExpiresAt:          r.ExpiresAt,
		})
		if err != nil {
			return nil, err
		}

		source, err := s.ledger.TokenAccount(ctx, tx, r.InitiatorTokenAccount)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", errs.ErrInvalidToken, err)
			}
			return nil, err
		}
		if err := guard.Owns(source.Owner, r.Initiator); err != nil {
			return nil, err
		}
		e.InitiatorToken = source.Mint

		addr, err := s.create(ctx, tx, e)
		if err != nil {
			return nil, err
		}

		vault, err := s.address(address.VaultSeeds(addr))
		if err != nil {
			return nil, err
		}

		if err := s.ledger.OpenTokenAccount(ctx, tx, vault, source.Mint, addr); err != nil {
			return nil, err
		}

		if err := s.ledger.TransferToken(ctx, tx, r.InitiatorTokenAccount, vault, r.InitiatorAmount); err != nil {
			return nil, err
		}

		return []address.Address{addr, vault, r.InitiatorTokenAccount}, nil
	})
}

func (s *srv) mutateEscrow(ctx context.Context, op string, escrow, caller address.Address, f func(e *entities.Escrow, now int64) error) error {
	_, err := s.run(ctx, op, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, caller); err != nil {
			return nil, err
		}

		e, err := storage.LoadVerified[entities.Escrow](ctx, tx, s.d, escrow)
		if err != nil {
			return nil, err
		}

		if err := f(e, now); err != nil {
			return nil, err
		}

		if err := s.save(ctx, tx, escrow, e); err != nil {
			return nil, err
		}

		return []address.Address{escrow}, nil
	})
	return err
}

func (s *srv) AcceptEscrow(ctx context.Context, r service.AcceptEscrowRequest) error {
	return s.mutateEscrow(ctx, OpAcceptEscrow, r.Escrow, r.Counterparty, func(e *entities.Escrow, now int64) error {
		return lifecycle.AcceptEscrow(e, r.Counterparty, now)
	})
}

func (s *srv) CompleteEscrow(ctx context.Context, r service.CompleteEscrowRequest) error {
	return s.mutateEscrow(ctx, OpCompleteEscrow, r.Escrow, r.Initiator, func(e *entities.Escrow, now int64) error {
		return lifecycle.CompleteEscrow(e, r.Initiator, now)
	})
}
