package impl

import (
	"context"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/lifecycle"
	"github.com/chumchon-net/chumchon/internal/service"
	"github.com/chumchon-net/chumchon/internal/storage"
)

func (s *srv) CreateUserProfile(ctx context.Context, r service.CreateUserProfileRequest) (address.Address, error) {
	return s.runCreate(ctx, OpCreateUserProfile, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Owner); err != nil {
			return nil, err
		}

		p, err := lifecycle.NewProfile(r.Owner, lifecycle.ProfileFields{
			Username:    r.Username,
			Bio:         r.Bio,
			ShowBalance: r.ShowBalance,
		}, now)
		if err != nil {
			return nil, err
		}

		addr, err := s.create(ctx, tx, p)
		if err != nil {
			return nil, err
		}

		return []address.Address{addr}, nil
	})
}

// mutateProfile loads the verified profile of owner, applies f and saves it.
func (s *srv) mutateProfile(ctx context.Context, op string, owner address.Address, f func(tx storage.Storage, p *entities.UserProfile, now int64) error) error {
	_, err := s.run(ctx, op, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, owner); err != nil {
			return nil, err
		}

		addr, err := s.address(address.UserSeeds(owner))
		if err != nil {
			return nil, err
		}

		p, err := storage.LoadVerified[entities.UserProfile](ctx, tx, s.d, addr)
		if err != nil {
			return nil, err
		}

		if err := f(tx, p, now); err != nil {
			return nil, err
		}

		if err := s.save(ctx, tx, addr, p); err != nil {
			return nil, err
		}

		return []address.Address{addr}, nil
	})
	return err
}

func (s *srv) UpdateUserProfile(ctx context.Context, r service.UpdateUserProfileRequest) error {
	return s.mutateProfile(ctx, OpUpdateUserProfile, r.Owner, func(_ storage.Storage, p *entities.UserProfile, now int64) error {
		return lifecycle.UpdateProfile(p, r.Owner, lifecycle.ProfileFields{
			Username:          r.Username,
			Bio:               r.Bio,
			ProfilePictureURL: r.ProfilePictureURL,
			ShowBalance:       r.ShowBalance,
		}, now)
	})
}

func (s *srv) CompleteTutorial(ctx context.Context, r service.CompleteTutorialRequest) error {
	return s.mutateProfile(ctx, OpCompleteTutorial, r.Owner, func(_ storage.Storage, p *entities.UserProfile, _ int64) error {
		return lifecycle.CompleteTutorial(p, r.Owner, r.TutorialID)
	})
}

func (s *srv) SetProfileNFT(ctx context.Context, r service.SetProfileNFTRequest) error {
	return s.mutateProfile(ctx, OpSetProfileNFT, r.Owner, func(tx storage.Storage, p *entities.UserProfile, _ int64) error {
		nft, err := s.ledger.Resolve(ctx, tx, &r.TokenAccount)
		if err != nil {
			return err
		}
		return lifecycle.SetProfileNFT(p, r.Owner, r.Mint, nft)
	})
}
