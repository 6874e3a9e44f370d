package leveldb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/storage"
)

var (
	ctx     = context.Background()
	errTest = errors.New("test")
)

func newStorage(t *testing.T) storage.Storage {
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return New(db)
}

func TestLevel_CreateGet(t *testing.T) {
	s := newStorage(t)

	r := &storage.Record{
		Kind:    entities.KindGroup,
		Address: address.Address{1},
		Parent:  address.Address{2},
		Data:    []byte("data"),
	}

	require.NoError(t, s.Create(ctx, r))
	require.True(t, errors.Is(s.Create(ctx, r), storage.ErrAlreadyExists))

	got, err := s.Get(ctx, entities.KindGroup, address.Address{1})
	require.NoError(t, err)
	assert.Equal(t, r, got)

	_, err = s.Get(ctx, entities.KindInvite, address.Address{1})
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestLevel_Update(t *testing.T) {
	s := newStorage(t)

	r := &storage.Record{Kind: entities.KindInvite, Address: address.Address{1}, Parent: address.Address{3}, Data: []byte("v1")}

	require.True(t, errors.Is(s.Update(ctx, r), storage.ErrNotFound))
	require.NoError(t, s.Create(ctx, r))

	require.NoError(t, s.Update(ctx, &storage.Record{Kind: entities.KindInvite, Address: address.Address{1}, Data: []byte("v2")}))

	got, err := s.Get(ctx, entities.KindInvite, address.Address{1})
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got.Data)
	assert.Equal(t, address.Address{3}, got.Parent)
}

func TestLevel_List(t *testing.T) {
	s := newStorage(t)

	parent := address.Address{9}
	for i := byte(1); i <= 3; i++ {
		require.NoError(t, s.Create(ctx, &storage.Record{
			Kind:    entities.KindGroupMember,
			Address: address.Address{i},
			Parent:  parent,
			Data:    []byte{i},
		}))
	}
	require.NoError(t, s.Create(ctx, &storage.Record{
		Kind:    entities.KindGroupMember,
		Address: address.Address{4},
		Parent:  address.Address{8},
		Data:    []byte{4},
	}))

	list, err := s.List(ctx, entities.KindGroupMember, parent)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, r := range list {
		assert.Equal(t, []byte{byte(i + 1)}, r.Data)
	}

	list, err = s.List(ctx, entities.KindMessage, parent)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLevel_InTx(t *testing.T) {
	s := newStorage(t)

	a := &storage.Record{Kind: entities.KindGroup, Address: address.Address{1}, Data: []byte("a")}
	b := &storage.Record{Kind: entities.KindGroup, Address: address.Address{2}, Data: []byte("b")}

	err := s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.Create(ctx, a))
		require.NoError(t, tx.Create(ctx, b))

		got, err := tx.Get(ctx, entities.KindGroup, a.Address)
		require.NoError(t, err)
		assert.Equal(t, a.Data, got.Data)

		return errTest
	})
	require.True(t, errors.Is(err, errTest))

	_, err = s.Get(ctx, entities.KindGroup, a.Address)
	require.True(t, errors.Is(err, storage.ErrNotFound), "rolled back tx must not leave writes")
	_, err = s.Get(ctx, entities.KindGroup, b.Address)
	require.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		return tx.Create(ctx, a)
	}))
	_, err = s.Get(ctx, entities.KindGroup, a.Address)
	require.NoError(t, err)
}

func TestLevel_InTx_Nested(t *testing.T) {
	s := newStorage(t)

	err := s.InTx(ctx, func(tx storage.Storage) error {
		return tx.InTx(ctx, func(storage.Storage) error { return nil })
	})
	require.True(t, errors.Is(err, storage.ErrNestedTx))
}

func TestLevel_Ping(t *testing.T) {
	require.NoError(t, newStorage(t).Ping(ctx))
}
