package lifecycle

import (
	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/assets"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/guard"
)

// GroupParams are the creation time fields of a group.
type GroupParams struct {
	Name                  string
	Description           string
	IsChannel             bool
	IsWhaleGroup          bool
	RequiredToken         *address.Address
	RequiredAmount        uint64
	RequiredNFTCollection *address.Address
	RequiredSolBalance    uint64
}

// NewGroup creates a group. The creator is not a member until they join.
func NewGroup(creator address.Address, p GroupParams, now int64) (*entities.Group, error) {
	if err := guard.Require(
		guard.MaxLen(p.Name, entities.MaxGroupNameLen, errs.ErrNameTooLong),
		guard.MaxLen(p.Description, entities.MaxGroupDescriptionLen, errs.ErrDescriptionTooLong),
	); err != nil {
		return nil, err
	}

	return &entities.Group{
		Name:                  p.Name,
		Description:           p.Description,
		Creator:               creator,
		IsChannel:             p.IsChannel,
		IsWhaleGroup:          p.IsWhaleGroup,
		RequiredToken:         entities.OptionOf(p.RequiredToken),
		RequiredAmount:        p.RequiredAmount,
		RequiredNFTCollection: entities.OptionOf(p.RequiredNFTCollection),
		RequiredSolBalance:    p.RequiredSolBalance,
		CreatedAt:             now,
	}, nil
}

// Credentials is what a joining member presents to pass group gates.
type Credentials struct {
	Balance uint64
	Token   assets.Presented
	NFT     assets.Presented
}

// CheckGates evaluates every gate configured on g. Gates that are not configured hold.
func CheckGates(g *entities.Group, member address.Address, c Credentials) error {
	if g.RequiredSolBalance > 0 && c.Balance < g.RequiredSolBalance {
		return errs.ErrInsufficientSolBalance
	}

	if mint, gated := g.RequiredToken.Get(); gated {
		h, ok := c.Token.Get()
		switch {
		case !ok, h.Mint != mint, h.Owner != member:
			return errs.ErrInvalidToken
		case h.Amount < g.RequiredAmount:
			return errs.ErrInsufficientTokenBalance
		}
	}

	if collection, gated := g.RequiredNFTCollection.Get(); gated {
		h, ok := c.NFT.Get()
		switch {
		case !ok:
			return errs.ErrNoNFT
		case h.Mint != collection, h.Owner != member:
			return errs.ErrInvalidNFT
		case h.Amount != 1:
			return errs.ErrNoNFT
		}
	}

	return nil
}

// Join adds member to g and returns the membership record to create.
func Join(g *entities.Group, group, member address.Address, now int64) *entities.GroupMember {
	g.MemberCount++

	return &entities.GroupMember{
		Group:    group,
		Member:   member,
		JoinedAt: now,
	}
}
