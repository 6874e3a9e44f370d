// Package storage contains a storage interface.
package storage

import (
	"context"
	"errors"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned by Create when the address is occupied.
var ErrAlreadyExists = errors.New("already exists")

// ErrNestedTx is returned by InTx called on a storage which is already in tx.
var ErrNestedTx = errors.New("can not run InTx within tx")

// Record is a raw stored record.
type Record struct {
	Kind    entities.Kind
	Address address.Address
	Parent  address.Address
	Data    []byte
}

// Storage provides methods for interacting with the record store.
// Every store keeps one sub-table per record kind.
type Storage interface {
	// InTx runs f against a transactional view of the storage: every write f performs
	// is committed when f returns nil and discarded otherwise.
	InTx(ctx context.Context, f func(s Storage) error) error

	Create(ctx context.Context, r *Record) error
	Get(ctx context.Context, kind entities.Kind, addr address.Address) (*Record, error)
	Update(ctx context.Context, r *Record) error
	List(ctx context.Context, kind entities.Kind, parent address.Address) ([]*Record, error)

	Ping(ctx context.Context) error
}
