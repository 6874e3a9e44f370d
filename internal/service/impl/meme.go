package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/lifecycle"
	"github.com/chumchon-net/chumchon/internal/service"
	"github.com/chumchon-net/chumchon/internal/storage"
)

func (s *srv) CreateMemeChallenge(ctx context.Context, r service.CreateMemeChallengeRequest) (address.Address, error) {
	return s.runCreate(ctx, OpCreateMemeChallenge, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Creator); err != nil {
			return nil, err
		}

		c, err := lifecycle.NewChallenge(r.Creator, lifecycle.ChallengeParams{
			Title:        r.Title,
			Description:  r.Description,
			Prompt:       r.Prompt,
			RewardAmount: r.RewardAmount,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
		}, now)
		if err != nil {
			return nil, err
		}

		addr, err := s.create(ctx, tx, c)
		if err != nil {
			return nil, err
		}

		return []address.Address{addr}, nil
	})
}

func (s *srv) SubmitMeme(ctx context.Context, r service.SubmitMemeRequest) (address.Address, error) {
	return s.runCreate(ctx, OpSubmitMeme, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Submitter); err != nil {
			return nil, err
		}

		c, err := storage.LoadVerified[entities.MemeChallenge](ctx, tx, s.d, r.Challenge)
		if err != nil {
			return nil, err
		}

		sub, err := lifecycle.Submit(c, r.Challenge, r.Submitter, lifecycle.SubmissionParams{
			ImageURL:    r.ImageURL,
			Title:       r.Title,
			Description: r.Description,
		}, now)
		if err != nil {
			return nil, err
		}

		addr, err := s.create(ctx, tx, sub)
		if err != nil {
			return nil, err
		}

		if err := s.save(ctx, tx, r.Challenge, c); err != nil {
			return nil, err
		}

		return []address.Address{addr, r.Challenge}, nil
	})
}

func (s *srv) VoteForMeme(ctx context.Context, r service.VoteForMemeRequest) (address.Address, error) {
	return s.runCreate(ctx, OpVoteForMeme, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Voter); err != nil {
			return nil, err
		}

		sub, err := storage.LoadVerified[entities.MemeSubmission](ctx, tx, s.d, r.Submission)
		if err != nil {
			return nil, err
		}

		c, err := storage.LoadVerified[entities.MemeChallenge](ctx, tx, s.d, sub.Challenge)
		if err != nil {
			return nil, err
		}

		v, err := lifecycle.Vote(c, sub, r.Submission, r.Voter, now)
		if err != nil {
			return nil, err
		}

		addr, err := s.create(ctx, tx, v)
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return nil, fmt.Errorf("%w: %s", errs.ErrAlreadyVoted, err)
			}
			return nil, err
		}

		if err := s.save(ctx, tx, r.Submission, sub); err != nil {
			return nil, err
		}
		if err := s.save(ctx, tx, sub.Challenge, c); err != nil {
			return nil, err
		}

		return []address.Address{addr, r.Submission, sub.Challenge}, nil
	})
}

func (s *srv) EndMemeChallenge(ctx context.Context, r service.EndMemeChallengeRequest) error {
	_, err := s.run(ctx, OpEndMemeChallenge, func(tx storage.Storage, now int64) ([]address.Address, error) {
		if err := signer(ctx, r.Creator); err != nil {
			return nil, err
		}

		c, err := storage.LoadVerified[entities.MemeChallenge](ctx, tx, s.d, r.Challenge)
		if err != nil {
			return nil, err
		}

		if err := lifecycle.EndChallenge(c, r.Creator, now); err != nil {
			return nil, err
		}

		if err := s.save(ctx, tx, r.Challenge, c); err != nil {
			return nil, err
		}

		return []address.Address{r.Challenge}, nil
	})
	return err
}
