package lifecycle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/assets"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
)

func TestNewGroup(t *testing.T) {
	g, err := NewGroup(initiator, GroupParams{Name: "devs"}, 5)
	require.NoError(t, err)
	assert.Equal(t, initiator, g.Creator)
	assert.Zero(t, g.MemberCount)
	assert.Equal(t, int64(5), g.CreatedAt)

	_, err = NewGroup(initiator, GroupParams{Name: strings.Repeat("n", 33)}, 5)
	assert.Equal(t, errs.ErrNameTooLong, err)

	_, err = NewGroup(initiator, GroupParams{Name: "devs", Description: strings.Repeat("d", 257)}, 5)
	assert.Equal(t, errs.ErrDescriptionTooLong, err)
}

func TestCheckGates(t *testing.T) {
	member := address.Address{7}
	mint, otherMint := address.Address{20}, address.Address{21}
	collection := address.Address{30}

	holding := func(mint address.Address, owner address.Address, amount uint64) assets.Presented {
		return assets.Present(assets.Holding{Account: address.Address{40}, Mint: mint, Owner: owner, Amount: amount})
	}

	tokenGated := &entities.Group{RequiredToken: entities.Some(mint), RequiredAmount: 5}
	nftGated := &entities.Group{RequiredNFTCollection: entities.Some(collection)}
	whale := &entities.Group{IsWhaleGroup: true, RequiredSolBalance: 100}

	tt := []struct {
		name  string
		group *entities.Group
		creds Credentials
		err   error
	}{
		{name: "no_gates", group: &entities.Group{}},
		{name: "token_absent", group: tokenGated, creds: Credentials{Token: assets.Absent()}, err: errs.ErrInvalidToken},
		{name: "token_wrong_mint", group: tokenGated, creds: Credentials{Token: holding(otherMint, member, 10)}, err: errs.ErrInvalidToken},
		{name: "token_foreign_owner", group: tokenGated, creds: Credentials{Token: holding(mint, stranger, 10)}, err: errs.ErrInvalidToken},
		{name: "token_insufficient", group: tokenGated, creds: Credentials{Token: holding(mint, member, 4)}, err: errs.ErrInsufficientTokenBalance},
		{name: "token_sufficient", group: tokenGated, creds: Credentials{Token: holding(mint, member, 5)}},
		{name: "nft_absent", group: nftGated, err: errs.ErrNoNFT},
		{name: "nft_wrong_collection", group: nftGated, creds: Credentials{NFT: holding(mint, member, 1)}, err: errs.ErrInvalidNFT},
		{name: "nft_amount", group: nftGated, creds: Credentials{NFT: holding(collection, member, 2)}, err: errs.ErrNoNFT},
		{name: "nft_held", group: nftGated, creds: Credentials{NFT: holding(collection, member, 1)}},
		{name: "whale_poor", group: whale, creds: Credentials{Balance: 99}, err: errs.ErrInsufficientSolBalance},
		{name: "whale_rich", group: whale, creds: Credentials{Balance: 100}},
		{name: "whale_flag_without_threshold", group: &entities.Group{IsWhaleGroup: true}},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.err, CheckGates(tc.group, member, tc.creds))
		})
	}
}

func TestJoin(t *testing.T) {
	g := &entities.Group{MemberCount: 2}
	group := address.Address{9}

	m := Join(g, group, initiator, 42)
	assert.Equal(t, uint32(3), g.MemberCount)
	assert.Equal(t, &entities.GroupMember{Group: group, Member: initiator, JoinedAt: 42}, m)
}
