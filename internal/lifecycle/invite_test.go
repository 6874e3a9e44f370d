package lifecycle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
)

func TestNewInvite(t *testing.T) {
	g := &entities.Group{Name: "devs", Creator: initiator}
	group := address.Address{9}

	tt := []struct {
		name      string
		caller    address.Address
		code      string
		maxUses   uint32
		expiresAt int64
		err       error
	}{
		{name: "valid", caller: initiator, code: "join", maxUses: 1, expiresAt: 11},
		{name: "not_creator", caller: stranger, code: "join", maxUses: 1, expiresAt: 11, err: errs.ErrNotGroupCreator},
		{name: "long_code", caller: initiator, code: strings.Repeat("c", 33), maxUses: 1, expiresAt: 11, err: errs.ErrCodeTooLong},
		{name: "zero_max_uses", caller: initiator, code: "join", maxUses: 0, expiresAt: 11, err: errs.ErrInvalidMaxUses},
		{name: "past_expiry", caller: initiator, code: "join", maxUses: 1, expiresAt: 10, err: errs.ErrInvalidExpiry},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			i, err := NewInvite(g, group, tc.caller, tc.code, tc.maxUses, tc.expiresAt, 10)
			assert.Equal(t, tc.err, err)
			if tc.err == nil {
				assert.Equal(t, group, i.Group)
				assert.Zero(t, i.Uses)
			}
		})
	}
}

func TestUseInvite_Capacity(t *testing.T) {
	const maxUses = 3

	i := &entities.Invite{MaxUses: maxUses, ExpiresAt: 100}

	for n := 0; n < maxUses; n++ {
		require.NoError(t, UseInvite(i, 50))
		assert.Equal(t, uint32(n+1), i.Uses)
	}

	assert.Equal(t, InviteExhausted, StatusOf(i, 50))
	assert.Equal(t, errs.ErrInviteUsed, UseInvite(i, 50))
	assert.Equal(t, uint32(maxUses), i.Uses)
}

func TestUseInvite_Expired(t *testing.T) {
	i := &entities.Invite{MaxUses: 5, ExpiresAt: 100}

	assert.Equal(t, InviteActive, StatusOf(i, 99))
	assert.Equal(t, errs.ErrInviteExpired, UseInvite(i, 100))
	assert.Equal(t, errs.ErrInviteExpired, UseInvite(i, 101))
	assert.Equal(t, InviteExpired, StatusOf(i, 100))
	assert.Zero(t, i.Uses)
}
