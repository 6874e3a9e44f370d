// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

const uniqueViolation = "23505"

type pg struct {
	ext sqlx.ExtContext
}

type recordDTO struct {
	Kind    string `db:"kind"`
	Address []byte `db:"address"`
	Parent  []byte `db:"parent"`
	Data    []byte `db:"data"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return storage.ErrNestedTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) inTx() bool {
	_, ok := s.ext.(*sqlx.Tx)
	return ok
}

func (s pg) Create(ctx context.Context, r *storage.Record) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO record(kind, address, parent, data)
			VALUES(:kind, :address, :parent, :data)
		`, toDTO(r),
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Get(ctx context.Context, kind entities.Kind, addr address.Address) (*storage.Record, error) {
	query := `SELECT kind, address, parent, data FROM record WHERE kind = $1 AND address = $2`
	if s.inTx() {
		// rows read by a transition stay locked until it commits
		query += ` FOR UPDATE`
	}

	var r recordDTO
	if err := sqlx.GetContext(ctx, s.ext, &r, query, string(kind), addr[:]); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return fromDTO(&r)
}

func (s pg) Update(ctx context.Context, r *storage.Record) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE record SET data=$3, updated_at=now() WHERE kind=$1 AND address=$2`,
		string(r.Kind), r.Address[:], r.Data,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) List(ctx context.Context, kind entities.Kind, parent address.Address) ([]*storage.Record, error) {
	var list []*recordDTO

	if err := sqlx.SelectContext(ctx, s.ext, &list, `
			SELECT kind, address, parent, data FROM record
			WHERE kind = $1 AND parent = $2
			ORDER BY address
		`, string(kind), parent[:],
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.Record, len(list))
	for i, v := range list {
		r, err := fromDTO(v)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

func (s pg) Ping(ctx context.Context) error {
	var v int
	if err := sqlx.GetContext(ctx, s.ext, &v, `SELECT 1`); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	return nil
}

func toDTO(r *storage.Record) recordDTO {
	return recordDTO{
		Kind:    string(r.Kind),
		Address: r.Address.Bytes(),
		Parent:  r.Parent.Bytes(),
		Data:    r.Data,
	}
}

func fromDTO(r *recordDTO) (*storage.Record, error) {
	addr, err := address.FromBytes(r.Address)
	if err != nil {
		return nil, fmt.Errorf("malformed address: %w", err)
	}

	parent, err := address.FromBytes(r.Parent)
	if err != nil {
		return nil, fmt.Errorf("malformed parent: %w", err)
	}

	return &storage.Record{
		Kind:    entities.Kind(r.Kind),
		Address: addr,
		Parent:  parent,
		Data:    r.Data,
	}, nil
}
