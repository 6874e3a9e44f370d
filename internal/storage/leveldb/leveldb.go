// Package leveldb is implementation of storage interface over goleveldb.
//
// Keys are laid out as
//
//	r/<kind>/<address>          -> parent || data
//	p/<kind>/<parent>/<address> -> empty
//
// Every InTx is a single leveldb transaction, so writes of one transition are
// committed or discarded together.
package leveldb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	goleveldb "github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	lstorage "github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "leveldb")

type reader interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
	Has(key []byte, ro *opt.ReadOptions) (bool, error)
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator
}

type level struct {
	db *goleveldb.DB
	tx *goleveldb.Transaction
}

// OpenFile opens or creates a database at path.
func OpenFile(path string) (*goleveldb.DB, error) {
	db, err := goleveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb: %w", err)
	}
	return db, nil
}

// OpenMemory opens a database which lives in memory only.
func OpenMemory() (*goleveldb.DB, error) {
	db, err := goleveldb.Open(lstorage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory leveldb: %w", err)
	}
	return db, nil
}

// New creates new instance of leveldb storage.
func New(db *goleveldb.DB) storage.Storage {
	return level{db: db}
}

func (s level) r() reader {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s level) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	if s.tx != nil {
		return storage.ErrNestedTx
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// OpenTransaction is exclusive: transactions are serialized.
	tx, err := s.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(level{db: s.db, tx: tx}); err != nil {
		tx.Discard()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Discard()
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

// withTx runs f in the current tx or in a new one.
func (s level) withTx(ctx context.Context, f func(tx *goleveldb.Transaction) error) error {
	if s.tx != nil {
		return f(s.tx)
	}

	return s.InTx(ctx, func(st storage.Storage) error {
		return f(st.(level).tx)
	})
}

func (s level) Create(ctx context.Context, r *storage.Record) error {
	key := recordKey(r.Kind, r.Address)

	return s.withTx(ctx, func(tx *goleveldb.Transaction) error {
		ok, err := tx.Has(key, nil)
		if err != nil {
			return fmt.Errorf("failed to check key: %w", err)
		}
		if ok {
			return storage.ErrAlreadyExists
		}

		if err := tx.Put(key, recordValue(r), nil); err != nil {
			return fmt.Errorf("failed to put record: %w", err)
		}
		if err := tx.Put(parentKey(r.Kind, r.Parent, r.Address), nil, nil); err != nil {
			return fmt.Errorf("failed to put index: %w", err)
		}

		return nil
	})
}

func (s level) Get(_ context.Context, kind entities.Kind, addr address.Address) (*storage.Record, error) {
	v, err := s.r().Get(recordKey(kind, addr), nil)
	if err != nil {
		if errors.Is(err, goleveldb.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return parseValue(kind, addr, v)
}

func (s level) Update(ctx context.Context, r *storage.Record) error {
	key := recordKey(r.Kind, r.Address)

	return s.withTx(ctx, func(tx *goleveldb.Transaction) error {
		v, err := tx.Get(key, nil)
		if err != nil {
			if errors.Is(err, goleveldb.ErrNotFound) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("failed to get record: %w", err)
		}

		old, err := parseValue(r.Kind, r.Address, v)
		if err != nil {
			return err
		}

		// parent is an identifying field and never changes
		upd := *r
		upd.Parent = old.Parent

		if err := tx.Put(key, recordValue(&upd), nil); err != nil {
			return fmt.Errorf("failed to put record: %w", err)
		}

		return nil
	})
}

func (s level) List(_ context.Context, kind entities.Kind, parent address.Address) ([]*storage.Record, error) {
	prefix := parentPrefix(kind, parent)

	it := s.r().NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	var out []*storage.Record
	for it.Next() {
		addr, err := address.FromBytes(it.Key()[len(prefix):])
		if err != nil {
			log.WithField("key", fmt.Sprintf("%x", it.Key())).Error("malformed index key")
			continue
		}

		v, err := s.r().Get(recordKey(kind, addr), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get indexed record %s: %w", addr, err)
		}

		r, err := parseValue(kind, addr, v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate: %w", err)
	}

	return out, nil
}

func (s level) Ping(_ context.Context) error {
	if _, err := s.db.GetProperty("leveldb.num-files-at-level0"); err != nil {
		return fmt.Errorf("failed to ping leveldb: %w", err)
	}
	return nil
}

func recordKey(kind entities.Kind, addr address.Address) []byte {
	var b bytes.Buffer
	b.WriteString("r/")
	b.WriteString(string(kind))
	b.WriteByte('/')
	b.Write(addr[:])
	return b.Bytes()
}

func parentPrefix(kind entities.Kind, parent address.Address) []byte {
	var b bytes.Buffer
	b.WriteString("p/")
	b.WriteString(string(kind))
	b.WriteByte('/')
	b.Write(parent[:])
	return b.Bytes()
}

func parentKey(kind entities.Kind, parent, addr address.Address) []byte {
	return append(parentPrefix(kind, parent), addr[:]...)
}

func recordValue(r *storage.Record) []byte {
	v := make([]byte, 0, address.Size+len(r.Data))
	v = append(v, r.Parent[:]...)
	return append(v, r.Data...)
}

func parseValue(kind entities.Kind, addr address.Address, v []byte) (*storage.Record, error) {
	if len(v) < address.Size {
		return nil, fmt.Errorf("malformed record %s/%s", kind, addr)
	}

	parent, _ := address.FromBytes(v[:address.Size])
	data := make([]byte, len(v)-address.Size)
	copy(data, v[address.Size:])

	return &storage.Record{
		Kind:    kind,
		Address: addr,
		Parent:  parent,
		Data:    data,
	}, nil
}
