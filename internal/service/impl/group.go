package impl

import (
	"context"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/guard"
	"github.com/chumchon-net/chumchon/internal/lifecycle"
	"github.com/chumchon-net/chumchon/internal/service"
	"github.com/chumchon-net/chumchon/internal/storage"
)

func (s *srv) CreateGroup(ctx context.Context, r service.CreateGroupRequest) (address.Address, error) {
	return s.runCreate(ctx, OpCreateGroup, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Creator); err != nil {
			return nil, err
		}

		g, err := lifecycle.NewGroup(r.Creator, lifecycle.GroupParams{
			Name:                  r.Name,
			Description:           r.Description,
			IsChannel:             r.IsChannel,
			IsWhaleGroup:          r.IsWhaleGroup,
			RequiredToken:         r.RequiredToken,
			RequiredAmount:        r.RequiredAmount,
			RequiredNFTCollection: r.RequiredNFTCollection,
			RequiredSolBalance:    r.RequiredSolBalance,
		}, now)
		if err != nil {
			return nil, err
		}

		addr, err := s.create(ctx, tx, g)
		if err != nil {
			return nil, err
		}

		return []address.Address{addr}, nil
	})
}

// addMember increments member_count of g and creates the membership record.
func (s *srv) addMember(ctx context.Context, tx storage.Storage, g *entities.Group, group, member address.Address, now int64) (address.Address, error) {
	m := lifecycle.Join(g, group, member, now)

	addr, err := s.create(ctx, tx, m)
	if err != nil {
		return address.Zero, err
	}

	if err := s.save(ctx, tx, group, g); err != nil {
		return address.Zero, err
	}

	return addr, nil
}

func (s *srv) JoinGroup(ctx context.Context, r service.JoinGroupRequest) (address.Address, error) {
	return s.runCreate(ctx, OpJoinGroup, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Member); err != nil {
			return nil, err
		}

		g, err := storage.LoadVerified[entities.Group](ctx, tx, s.d, r.Group)
		if err != nil {
			return nil, err
		}

		balance, err := s.ledger.Balance(ctx, tx, r.Member)
		if err != nil {
			return nil, err
		}

		token, err := s.ledger.Resolve(ctx, tx, r.TokenAccount)
		if err != nil {
			return nil, err
		}

		nft, err := s.ledger.Resolve(ctx, tx, r.NFTAccount)
		if err != nil {
			return nil, err
		}

		if err := lifecycle.CheckGates(g, r.Member, lifecycle.Credentials{
			Balance: balance,
			Token:   token,
			NFT:     nft,
		}); err != nil {
			return nil, err
		}

		addr, err := s.addMember(ctx, tx, g, r.Group, r.Member, now)
		if err != nil {
			return nil, err
		}

		return []address.Address{addr, r.Group}, nil
	})
}

func (s *srv) CreateInvite(ctx context.Context, r service.CreateInviteRequest) (address.Address, error) {
	return s.runCreate(ctx, OpCreateInvite, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Creator); err != nil {
			return nil, err
		}

		g, err := storage.LoadVerified[entities.Group](ctx, tx, s.d, r.Group)
		if err != nil {
			return nil, err
		}

		i, err := lifecycle.NewInvite(g, r.Group, r.Creator, r.Code, r.MaxUses, r.ExpiresAt, now)
		if err != nil {
			return nil, err
		}

		addr, err := s.create(ctx, tx, i)
		if err != nil {
			return nil, err
		}

		return []address.Address{addr}, nil
	})
}

func (s *srv) UseInvite(ctx context.Context, r service.UseInviteRequest) (address.Address, error) {
	return s.runCreate(ctx, OpUseInvite, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Member); err != nil {
			return nil, err
		}

		inviteAddr, err := s.address(address.InviteSeeds(r.Group, r.Code))
		if err != nil {
			return nil, err
		}

		i, err := storage.LoadVerified[entities.Invite](ctx, tx, s.d, inviteAddr)
		if err != nil {
			return nil, err
		}

		g, err := storage.LoadVerified[entities.Group](ctx, tx, s.d, r.Group)
		if err != nil {
			return nil, err
		}

		if err := lifecycle.UseInvite(i, now); err != nil {
			return nil, err
		}

		if err := s.save(ctx, tx, inviteAddr, i); err != nil {
			return nil, err
		}

		addr, err := s.addMember(ctx, tx, g, r.Group, r.Member, now)
		if err != nil {
			return nil, err
		}

		return []address.Address{addr, inviteAddr, r.Group}, nil
	})
}

func (s *srv) SendMessage(ctx context.Context, r service.SendMessageRequest) (address.Address, error) {
	return s.runCreate(ctx, OpSendMessage, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Sender); err != nil {
			return nil, err
		}

		g, err := storage.LoadVerified[entities.Group](ctx, tx, s.d, r.Group)
		if err != nil {
			return nil, err
		}

		if err := guard.IsMember(ctx, tx, s.d, r.Group, r.Sender); err != nil {
			return nil, err
		}

		m, err := lifecycle.Send(g, r.Group, r.Sender, r.Content, now)
		if err != nil {
			return nil, err
		}

		addr, err := s.create(ctx, tx, m)
		if err != nil {
			return nil, err
		}

		if err := s.save(ctx, tx, r.Group, g); err != nil {
			return nil, err
		}

		return []address.Address{addr, r.Group}, nil
	})
}

func (s *srv) TipMessage(ctx context.Context, r service.TipMessageRequest) error {
	_, err := s.run(ctx, OpTipMessage, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Tipper); err != nil {
			return nil, err
		}

		m, err := storage.LoadVerified[entities.Message](ctx, tx, s.d, r.Message)
		if err != nil {
			return nil, err
		}

		if r.Recipient != nil && *r.Recipient != m.Sender {
			return nil, errs.ErrInvalidRecipient
		}

		if err := lifecycle.Tip(m, r.Amount); err != nil {
			return nil, err
		}

		if err := s.ledger.Transfer(ctx, tx, r.Tipper, m.Sender, r.Amount); err != nil {
			return nil, err
		}

		if err := s.save(ctx, tx, r.Message, m); err != nil {
			return nil, err
		}

		return []address.Address{r.Message, r.Tipper, m.Sender}, nil
	})
	return err
}
