package impl

import (
	"context"
	"sort"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/lifecycle"
	"github.com/chumchon-net/chumchon/internal/storage"
)

func get[T any, P interface {
	*T
	entities.Derived
}](ctx context.Context, s *srv, addr address.Address) (P, error) {
	v, err := storage.LoadVerified[T, P](ctx, s.s, s.d, addr)
	if err != nil {
		return nil, translate(err)
	}
	return v, nil
}

func list[T any, P storage.Ptr[T]](ctx context.Context, s *srv, parent address.Address) ([]P, error) {
	v, err := storage.ListOf[T, P](ctx, s.s, parent)
	if err != nil {
		return nil, translate(err)
	}
	return v, nil
}

func (s *srv) GetUserProfile(ctx context.Context, owner address.Address) (*entities.UserProfile, error) {
	addr, err := s.address(address.UserSeeds(owner))
	if err != nil {
		return nil, err
	}
	return get[entities.UserProfile](ctx, s, addr)
}

func (s *srv) GetGroup(ctx context.Context, group address.Address) (*entities.Group, error) {
	return get[entities.Group](ctx, s, group)
}

func (s *srv) ListGroupMembers(ctx context.Context, group address.Address) ([]*entities.GroupMember, error) {
	out, err := list[entities.GroupMember](ctx, s, group)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].JoinedAt < out[j].JoinedAt
	})

	return out, nil
}

func (s *srv) ListGroupMessages(ctx context.Context, group address.Address) ([]*entities.Message, error) {
	out, err := list[entities.Message](ctx, s, group)
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})

	return out, nil
}

func (s *srv) ListGroupInvites(ctx context.Context, group address.Address) ([]*entities.Invite, error) {
	return list[entities.Invite](ctx, s, group)
}

func (s *srv) GetInvite(ctx context.Context, invite address.Address) (*entities.Invite, error) {
	return get[entities.Invite](ctx, s, invite)
}

func (s *srv) GetMessage(ctx context.Context, message address.Address) (*entities.Message, error) {
	return get[entities.Message](ctx, s, message)
}

func (s *srv) GetEscrow(ctx context.Context, escrow address.Address) (*entities.Escrow, error) {
	return get[entities.Escrow](ctx, s, escrow)
}

func (s *srv) GetMemeChallenge(ctx context.Context, challenge address.Address) (*entities.MemeChallenge, error) {
	return get[entities.MemeChallenge](ctx, s, challenge)
}

func (s *srv) ListSubmissions(ctx context.Context, challenge address.Address) ([]*entities.MemeSubmission, error) {
	out, err := list[entities.MemeSubmission](ctx, s, challenge)
	if err != nil {
		return nil, err
	}
	return lifecycle.Standings(out), nil
}

func (s *srv) GetBalance(ctx context.Context, owner address.Address) (uint64, error) {
	b, err := s.ledger.Balance(ctx, s.s, owner)
	if err != nil {
		return 0, translate(err)
	}
	return b, nil
}

func (s *srv) GetTokenAccount(ctx context.Context, account address.Address) (*entities.TokenAccount, error) {
	acc, err := s.ledger.TokenAccount(ctx, s.s, account)
	if err != nil {
		return nil, translate(err)
	}
	return acc, nil
}
