package lifecycle

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
)

func TestSend(t *testing.T) {
	group := address.Address{9}
	g := &entities.Group{Creator: initiator}

	m, err := Send(g, group, counterparty, strings.Repeat("x", entities.MaxMessageLen), 10)
	require.NoError(t, err)
	assert.Zero(t, m.Index)
	assert.Equal(t, uint64(1), g.MessageCount)
	assert.Equal(t, int64(10), g.LastMessageAt)

	m, err = Send(g, group, counterparty, "again", 11)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), m.Index)

	_, err = Send(g, group, counterparty, strings.Repeat("x", entities.MaxMessageLen+1), 12)
	assert.Equal(t, errs.ErrContentTooLong, err)
	assert.Equal(t, uint64(2), g.MessageCount)
}

func TestSend_Channel(t *testing.T) {
	g := &entities.Group{Creator: initiator, IsChannel: true}

	_, err := Send(g, address.Address{9}, counterparty, "hi", 10)
	assert.Equal(t, errs.ErrChannelPostingRestricted, err)

	_, err = Send(g, address.Address{9}, initiator, "hi", 10)
	assert.NoError(t, err)
}

func TestTip(t *testing.T) {
	m := &entities.Message{}

	assert.Equal(t, errs.ErrInvalidAmount, Tip(m, 0))
	require.NoError(t, Tip(m, 100))
	require.NoError(t, Tip(m, 5))
	assert.Equal(t, uint64(105), m.TipsReceived)

	err := Tip(m, math.MaxUint64-104)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidAmount))
	assert.Equal(t, uint64(105), m.TipsReceived)

	require.NoError(t, Tip(m, math.MaxUint64-105))
	assert.Equal(t, uint64(math.MaxUint64), m.TipsReceived)
}
