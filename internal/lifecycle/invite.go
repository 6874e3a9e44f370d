package lifecycle

import (
	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/guard"
)

// InviteStatus is derived from uses and expiry, it is never stored.
type InviteStatus string

// Invite statuses.
const (
	InviteActive    InviteStatus = "active"
	InviteExhausted InviteStatus = "exhausted"
	InviteExpired   InviteStatus = "expired"
)

// NewInvite creates an invite to group g, which only its creator can do.
func NewInvite(g *entities.Group, group, caller address.Address, code string, maxUses uint32, expiresAt, now int64) (*entities.Invite, error) {
	if err := guard.Require(
		guard.IsCreator(g.Creator, caller),
		guard.MaxLen(code, entities.MaxInviteCodeLen, errs.ErrCodeTooLong),
	); err != nil {
		return nil, err
	}
	if maxUses == 0 {
		return nil, errs.ErrInvalidMaxUses
	}
	if expiresAt <= now {
		return nil, errs.ErrInvalidExpiry
	}

	return &entities.Invite{
		Group:     group,
		Creator:   caller,
		Code:      code,
		MaxUses:   maxUses,
		ExpiresAt: expiresAt,
	}, nil
}

// UseInvite consumes one use of i.
func UseInvite(i *entities.Invite, now int64) error {
	if err := guard.Require(
		guard.NotExpired(now, i.ExpiresAt, errs.ErrInviteExpired),
		guard.BelowCapacity(i.Uses, i.MaxUses),
	); err != nil {
		return err
	}

	i.Uses++

	return nil
}

// StatusOf returns status of i at now.
func StatusOf(i *entities.Invite, now int64) InviteStatus {
	switch {
	case now >= i.ExpiresAt:
		return InviteExpired
	case i.Uses >= i.MaxUses:
		return InviteExhausted
	default:
		return InviteActive
	}
}
