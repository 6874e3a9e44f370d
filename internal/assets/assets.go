// Package assets contains the asset capability used by transitions: native
// balances, token accounts and transfers between them.
//
// Assets live in the same record store as the social records, so a transfer
// performed inside a transition is committed or discarded with it.
package assets

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/storage"
)

// ErrBalanceOverflow is returned when a credit would overflow a balance.
var ErrBalanceOverflow = errors.New("balance overflow")

// Ledger moves assets between identities and token accounts.
type Ledger interface {
	Balance(ctx context.Context, s storage.Storage, owner address.Address) (uint64, error)
	// Transfer moves native units; it fails with errs.ErrInsufficientFunds.
	Transfer(ctx context.Context, s storage.Storage, from, to address.Address, amount uint64) error
	TokenAccount(ctx context.Context, s storage.Storage, account address.Address) (*entities.TokenAccount, error)
	// TransferToken moves units between two token accounts of the same mint.
	TransferToken(ctx context.Context, s storage.Storage, from, to address.Address, amount uint64) error
	OpenTokenAccount(ctx context.Context, s storage.Storage, account, mint, owner address.Address) error
	// Resolve turns an optional token account reference into a holding.
	// A reference to a missing account resolves to Absent.
	Resolve(ctx context.Context, s storage.Storage, account *address.Address) (Presented, error)
}

type ledger struct{}

// New creates new instance of ledger.
func New() Ledger {
	return ledger{}
}

func (ledger) Balance(ctx context.Context, s storage.Storage, owner address.Address) (uint64, error) {
	acc, err := loadNative(ctx, s, owner)
	if err != nil {
		return 0, err
	}
	return acc.Lamports, nil
}

func (l ledger) Transfer(ctx context.Context, s storage.Storage, from, to address.Address, amount uint64) error {
	src, err := loadNative(ctx, s, from)
	if err != nil {
		return err
	}

	if src.Lamports < amount {
		return fmt.Errorf("%w: balance=%d amount=%d", errs.ErrInsufficientFunds, src.Lamports, amount)
	}

	if from == to {
		return nil
	}

	dst, err := loadNative(ctx, s, to)
	if err != nil {
		return err
	}

	if dst.Lamports > math.MaxUint64-amount {
		return ErrBalanceOverflow
	}

	src.Lamports -= amount
	dst.Lamports += amount

	if err := putNative(ctx, s, src); err != nil {
		return err
	}
	return putNative(ctx, s, dst)
}

func (ledger) TokenAccount(ctx context.Context, s storage.Storage, account address.Address) (*entities.TokenAccount, error) {
	acc, err := storage.Load[entities.TokenAccount](ctx, s, account)
	if err != nil {
		return nil, fmt.Errorf("failed to load token account %s: %w", account, err)
	}
	return acc, nil
}

func (l ledger) TransferToken(ctx context.Context, s storage.Storage, from, to address.Address, amount uint64) error {
	src, err := l.TokenAccount(ctx, s, from)
	if err != nil {
		return err
	}

	dst, err := l.TokenAccount(ctx, s, to)
	if err != nil {
		return err
	}

	if src.Mint != dst.Mint {
		return fmt.Errorf("%w: mint mismatch", errs.ErrInvalidToken)
	}

	if src.Amount < amount {
		return fmt.Errorf("%w: token balance=%d amount=%d", errs.ErrInsufficientFunds, src.Amount, amount)
	}

	if from == to {
		return nil
	}

	if dst.Amount > math.MaxUint64-amount {
		return ErrBalanceOverflow
	}

	src.Amount -= amount
	dst.Amount += amount

	if err := storage.Save(ctx, s, from, src); err != nil {
		return fmt.Errorf("failed to save token account: %w", err)
	}
	if err := storage.Save(ctx, s, to, dst); err != nil {
		return fmt.Errorf("failed to save token account: %w", err)
	}

	return nil
}

func (ledger) OpenTokenAccount(ctx context.Context, s storage.Storage, account, mint, owner address.Address) error {
	if err := storage.Insert(ctx, s, account, &entities.TokenAccount{Mint: mint, Owner: owner}); err != nil {
		return fmt.Errorf("failed to open token account %s: %w", account, err)
	}
	return nil
}

func (l ledger) Resolve(ctx context.Context, s storage.Storage, account *address.Address) (Presented, error) {
	if account == nil {
		return Absent(), nil
	}

	acc, err := l.TokenAccount(ctx, s, *account)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Absent(), nil
		}
		return Absent(), err
	}

	return Present(Holding{
		Account: *account,
		Mint:    acc.Mint,
		Owner:   acc.Owner,
		Amount:  acc.Amount,
	}), nil
}

// Credit adds lamports to the native balance of owner.
func Credit(ctx context.Context, s storage.Storage, owner address.Address, lamports uint64) error {
	acc, err := loadNative(ctx, s, owner)
	if err != nil {
		return err
	}

	if acc.Lamports > math.MaxUint64-lamports {
		return ErrBalanceOverflow
	}
	acc.Lamports += lamports

	return putNative(ctx, s, acc)
}

// MintTo creates or tops up a token account.
func MintTo(ctx context.Context, s storage.Storage, account, mint, owner address.Address, amount uint64) error {
	acc, err := storage.Load[entities.TokenAccount](ctx, s, account)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return storage.Insert(ctx, s, account, &entities.TokenAccount{Mint: mint, Owner: owner, Amount: amount})
	case err != nil:
		return fmt.Errorf("failed to load token account: %w", err)
	}

	if acc.Mint != mint || acc.Owner != owner {
		return fmt.Errorf("%w: token account %s belongs to another mint or owner", errs.ErrInvalidToken, account)
	}
	if acc.Amount > math.MaxUint64-amount {
		return ErrBalanceOverflow
	}
	acc.Amount += amount

	return storage.Save(ctx, s, account, acc)
}

// loadNative returns the native account of owner, an empty one when absent.
func loadNative(ctx context.Context, s storage.Storage, owner address.Address) (*entities.NativeAccount, error) {
	acc, err := storage.Load[entities.NativeAccount](ctx, s, owner)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &entities.NativeAccount{Owner: owner}, nil
		}
		return nil, fmt.Errorf("failed to load native account %s: %w", owner, err)
	}
	return acc, nil
}

func putNative(ctx context.Context, s storage.Storage, acc *entities.NativeAccount) error {
	err := storage.Save(ctx, s, acc.Owner, acc)
	if errors.Is(err, storage.ErrNotFound) {
		err = storage.Insert(ctx, s, acc.Owner, acc)
	}
	if err != nil {
		return fmt.Errorf("failed to save native account %s: %w", acc.Owner, err)
	}
	return nil
}
