package storage

import (
	"context"
	"fmt"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
)

// Ptr constrains P to be a pointer to T implementing entities.Record.
type Ptr[T any] interface {
	*T
	entities.Record
}

// Load reads and decodes the record of kind P stored at addr.
func Load[T any, P Ptr[T]](ctx context.Context, s Storage, addr address.Address) (P, error) {
	var v P = new(T)

	r, err := s.Get(ctx, v.Kind(), addr)
	if err != nil {
		return nil, err
	}

	if err := entities.Decode(r.Data, v); err != nil {
		return nil, err
	}

	return v, nil
}

// LoadVerified is Load followed by re-derivation of addr from the record's own
// seeds and stored bump.
func LoadVerified[T any, P interface {
	*T
	entities.Derived
}](ctx context.Context, s Storage, d address.Deriver, addr address.Address) (P, error) {
	v, err := Load[T, P](ctx, s, addr)
	if err != nil {
		return nil, err
	}

	if err := d.VerifySeeds(addr, v.GetBump(), v.Seeds()); err != nil {
		return nil, err
	}

	return v, nil
}

// Insert encodes and creates rec at addr.
func Insert(ctx context.Context, s Storage, addr address.Address, rec entities.Record) error {
	r, err := toRecord(addr, rec)
	if err != nil {
		return err
	}

	return s.Create(ctx, r)
}

// Save encodes and overwrites the existing record at addr.
func Save(ctx context.Context, s Storage, addr address.Address, rec entities.Record) error {
	r, err := toRecord(addr, rec)
	if err != nil {
		return err
	}

	return s.Update(ctx, r)
}

// Mutate loads the record at addr, applies f and saves the result.
// Nothing is written when f fails.
func Mutate[T any, P Ptr[T]](ctx context.Context, s Storage, addr address.Address, f func(v P) error) (P, error) {
	v, err := Load[T, P](ctx, s, addr)
	if err != nil {
		return nil, err
	}

	if err := f(v); err != nil {
		return nil, err
	}

	if err := Save(ctx, s, addr, v); err != nil {
		return nil, err
	}

	return v, nil
}

// ListOf decodes all records of kind P listed under parent.
func ListOf[T any, P Ptr[T]](ctx context.Context, s Storage, parent address.Address) ([]P, error) {
	var k P = new(T)

	list, err := s.List(ctx, k.Kind(), parent)
	if err != nil {
		return nil, err
	}

	out := make([]P, len(list))
	for i, r := range list {
		v := P(new(T))
		if err := entities.Decode(r.Data, v); err != nil {
			return nil, fmt.Errorf("record %s: %w", r.Address, err)
		}
		out[i] = v
	}

	return out, nil
}

func toRecord(addr address.Address, rec entities.Record) (*Record, error) {
	data, err := entities.Encode(rec)
	if err != nil {
		return nil, err
	}

	return &Record{
		Kind:    rec.Kind(),
		Address: addr,
		Parent:  rec.Parent(),
		Data:    data,
	}, nil
}
