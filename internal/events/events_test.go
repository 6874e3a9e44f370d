package events

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/address"
)

type collector []Event

func (c *collector) Emit(e Event) { *c = append(*c, e) }

func TestNew(t *testing.T) {
	now := time.Unix(100, 0)

	a := New("join_group", now, address.Address{1})
	b := New("join_group", now, address.Address{1})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "join_group", a.Op)
	assert.Equal(t, []address.Address{{1}}, a.Addresses)
}

func TestMulti(t *testing.T) {
	var a, b collector
	e := New("tip_message", time.Unix(1, 0))

	Multi{&a, NoopEmitter{}, &b}.Emit(e)

	assert.Equal(t, collector{e}, a)
	assert.Equal(t, collector{e}, b)
}

func TestLogEmitter(t *testing.T) {
	l, hook := test.NewNullLogger()

	LogEmitter{Log: l}.Emit(New("send_message", time.Unix(5, 0), address.Address{2}))

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "send_message", entry.Data["op"])
	assert.Equal(t, []string{address.Address{2}.String()}, entry.Data["addresses"])
}
