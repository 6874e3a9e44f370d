// Package guard contains authorization predicates evaluated before a transition mutates state.
// Every predicate returns nil when it holds and a typed failure reason otherwise.
package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/storage"
)

// Identities is a set of identities that authorized a request.
type Identities interface {
	Contains(id address.Address) bool
}

// Require returns the first failed predicate.
func Require(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// IsSigner checks that id authorized the request.
func IsSigner(signers Identities, id address.Address) error {
	if signers == nil || !signers.Contains(id) {
		return fmt.Errorf("%w: %s is not a signer", errs.ErrUnauthorized, id)
	}
	return nil
}

// Owns checks that owner is id.
func Owns(owner, id address.Address) error {
	if owner != id {
		return errs.ErrNotOwner
	}
	return nil
}

// IsCreator checks that creator is id.
func IsCreator(creator, id address.Address) error {
	if creator != id {
		return errs.ErrNotGroupCreator
	}
	return nil
}

// IsMember checks that a membership record of id in group exists.
func IsMember(ctx context.Context, s storage.Storage, d address.Deriver, group, id address.Address) error {
	addr, _, err := d.DeriveSeeds(address.MemberSeeds(group, id))
	if err != nil {
		return err
	}

	if _, err := storage.LoadVerified[entities.GroupMember](ctx, s, d, addr); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return errs.ErrNotGroupMember
		}
		return err
	}

	return nil
}

// WithinWindow checks that start < now < end.
// notStarted is returned when now <= start, ended when now >= end.
func WithinWindow(now, start, end int64, notStarted, ended error) error {
	if now <= start {
		return notStarted
	}
	if now >= end {
		return ended
	}
	return nil
}

// NotExpired checks that now < expiresAt.
func NotExpired(now, expiresAt int64, expired error) error {
	if now >= expiresAt {
		return expired
	}
	return nil
}

// NotAfter checks that now <= deadline.
func NotAfter(now, deadline int64, expired error) error {
	if now > deadline {
		return expired
	}
	return nil
}

// BelowCapacity checks that uses < max.
func BelowCapacity(uses, max uint32) error {
	if uses >= max {
		return errs.ErrInviteUsed
	}
	return nil
}

// MaxLen checks that len(s) <= max.
func MaxLen(s string, max int, tooLong error) error {
	if len(s) > max {
		return tooLong
	}
	return nil
}
