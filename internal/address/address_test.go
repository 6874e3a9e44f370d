package address

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/errs"
)

func testProgram() Address {
	var p Address
	for i := range p {
		p[i] = byte(i + 1)
	}
	return p
}

func TestDeriver_Derive_Deterministic(t *testing.T) {
	d := NewDeriver(testProgram())

	owner := Address{1, 2, 3}

	a1, b1, err := d.DeriveSeeds(UserSeeds(owner))
	require.NoError(t, err)
	a2, b2, err := d.DeriveSeeds(UserSeeds(owner))
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.False(t, onCurve(a1))
	require.NoError(t, d.VerifySeeds(a1, b1, UserSeeds(owner)))
}

func TestDeriver_Derive_ProgramBound(t *testing.T) {
	owner := Address{9}

	a1, _, err := NewDeriver(testProgram()).DeriveSeeds(UserSeeds(owner))
	require.NoError(t, err)
	a2, _, err := NewDeriver(Address{42}).DeriveSeeds(UserSeeds(owner))
	require.NoError(t, err)

	assert.NotEqual(t, a1, a2)
}

func TestDeriver_Verify(t *testing.T) {
	d := NewDeriver(testProgram())
	creator := Address{7}

	addr, bump, err := d.DeriveSeeds(GroupSeeds("devs", creator))
	require.NoError(t, err)

	tt := []struct {
		name  string
		addr  Address
		bump  uint8
		seeds Seeds
		ok    bool
	}{
		{name: "valid", addr: addr, bump: bump, seeds: GroupSeeds("devs", creator), ok: true},
		{name: "other_bump", addr: addr, bump: bump - 1, seeds: GroupSeeds("devs", creator)},
		{name: "other_name", addr: addr, bump: bump, seeds: GroupSeeds("dev", creator)},
		{name: "other_namespace", addr: addr, bump: bump, seeds: Seeds{Namespace: Invite, Parts: GroupSeeds("devs", creator).Parts}},
		{name: "substituted_address", addr: Address{1}, bump: bump, seeds: GroupSeeds("devs", creator)},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			err := d.VerifySeeds(tc.addr, tc.bump, tc.seeds)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, errs.ErrAddressMismatch))
		})
	}
}

func TestDeriver_Derive_PartBoundaries(t *testing.T) {
	d := NewDeriver(testProgram())

	a1, _, err := d.Derive(Group, []byte("ab"), []byte("c"))
	require.NoError(t, err)
	a2, _, err := d.Derive(Group, []byte("a"), []byte("bc"))
	require.NoError(t, err)

	assert.NotEqual(t, a1, a2)
}

func TestDeriver_Derive_Injective(t *testing.T) {
	d := NewDeriver(testProgram())
	rnd := rand.New(rand.NewSource(1))
	namespaces := []Namespace{User, Group, Member, Invite, Challenge, Submission, Voter, Escrow, Message}

	seen := make(map[Address]string, 2000)

	for i := 0; i < 2000; i++ {
		ns := namespaces[rnd.Intn(len(namespaces))]
		parts := make([][]byte, 1+rnd.Intn(3))
		key := string(ns)
		for j := range parts {
			parts[j] = make([]byte, rnd.Intn(40))
			_, _ = rnd.Read(parts[j])
			key += "|" + string(parts[j])
		}

		addr, _, err := d.Derive(ns, parts...)
		require.NoError(t, err)

		if prev, ok := seen[addr]; ok {
			require.Equal(t, prev, key, "two distinct tuples derived the same address")
		}
		seen[addr] = key
	}
}

func TestParse(t *testing.T) {
	a := Address{1, 2, 3, 4}

	b, err := Parse(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = Parse("not-base58-0OIl")
	require.True(t, errors.Is(err, ErrInvalidAddress))

	_, err = Parse("2")
	require.True(t, errors.Is(err, ErrInvalidAddress))

	var c Address
	require.NoError(t, c.UnmarshalText([]byte(a.String())))
	assert.Equal(t, a, c)
}
