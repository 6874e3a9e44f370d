package lifecycle

import (
	"sort"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/guard"
)

// ChallengeStatus is derived from the window and the completed latch.
type ChallengeStatus string

// Challenge statuses.
const (
	ChallengeScheduled ChallengeStatus = "scheduled"
	ChallengeActive    ChallengeStatus = "active"
	ChallengeEnded     ChallengeStatus = "ended"
	ChallengeCompleted ChallengeStatus = "completed"
)

// ChallengeParams are the creation time fields of a meme challenge.
type ChallengeParams struct {
	Title        string
	Description  string
	Prompt       string
	RewardAmount uint64
	StartTime    int64
	EndTime      int64
}

// NewChallenge creates a challenge scheduled in the future.
func NewChallenge(creator address.Address, p ChallengeParams, now int64) (*entities.MemeChallenge, error) {
	if err := guard.Require(
		guard.MaxLen(p.Title, entities.MaxChallengeTitleLen, errs.ErrTitleTooLong),
		guard.MaxLen(p.Description, entities.MaxChallengeDescLen, errs.ErrDescriptionTooLong),
		guard.MaxLen(p.Prompt, entities.MaxChallengePromptLen, errs.ErrPromptTooLong),
	); err != nil {
		return nil, err
	}
	if p.RewardAmount == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if p.EndTime <= p.StartTime || p.StartTime <= now {
		return nil, errs.ErrInvalidExpiry
	}

	return &entities.MemeChallenge{
		Creator:      creator,
		Title:        p.Title,
		Description:  p.Description,
		Prompt:       p.Prompt,
		RewardAmount: p.RewardAmount,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
	}, nil
}

// SubmissionParams are the fields of a meme submission.
type SubmissionParams struct {
	ImageURL    string
	Title       string
	Description string
}

// Submit adds a submission of submitter to active challenge c.
func Submit(c *entities.MemeChallenge, challenge, submitter address.Address, p SubmissionParams, now int64) (*entities.MemeSubmission, error) {
	if err := guard.Require(
		guard.WithinWindow(now, c.StartTime, c.EndTime, errs.ErrChallengeNotStarted, errs.ErrChallengeEnded),
		guard.MaxLen(p.ImageURL, entities.MaxSubmissionURLLen, errs.ErrURLTooLong),
		guard.MaxLen(p.Title, entities.MaxSubmissionTitleLen, errs.ErrTitleTooLong),
		guard.MaxLen(p.Description, entities.MaxSubmissionDescLen, errs.ErrDescriptionTooLong),
	); err != nil {
		return nil, err
	}

	c.SubmissionCount++

	return &entities.MemeSubmission{
		Challenge:   challenge,
		Submitter:   submitter,
		ImageURL:    p.ImageURL,
		Title:       p.Title,
		Description: p.Description,
		SubmittedAt: now,
	}, nil
}

// Vote counts one vote of voter for s in c and returns the voter record to create.
// Uniqueness of the voter record is enforced by the store.
func Vote(c *entities.MemeChallenge, s *entities.MemeSubmission, submission, voter address.Address, now int64) (*entities.VoterRecord, error) {
	if err := guard.WithinWindow(now, c.StartTime, c.EndTime, errs.ErrChallengeInactive, errs.ErrChallengeInactive); err != nil {
		return nil, err
	}
	if s.Submitter == voter {
		return nil, errs.ErrCannotVoteOwnSubmission
	}

	s.Votes++
	c.TotalVotes++

	return &entities.VoterRecord{
		Submission: submission,
		Voter:      voter,
		VotedAt:    now,
	}, nil
}

// EndChallenge sets the completed latch of c. The winner is left unassigned.
func EndChallenge(c *entities.MemeChallenge, caller address.Address, now int64) error {
	if err := guard.IsCreator(c.Creator, caller); err != nil {
		return err
	}
	if now < c.EndTime {
		return errs.ErrChallengeNotEnded
	}
	if c.Completed {
		return errs.ErrChallengeAlreadyCompleted
	}
	if c.SubmissionCount == 0 {
		return errs.ErrNoSubmissions
	}

	c.Completed = true

	return nil
}

// StatusOfChallenge returns status of c at now.
func StatusOfChallenge(c *entities.MemeChallenge, now int64) ChallengeStatus {
	switch {
	case c.Completed:
		return ChallengeCompleted
	case now <= c.StartTime:
		return ChallengeScheduled
	case now < c.EndTime:
		return ChallengeActive
	default:
		return ChallengeEnded
	}
}

// Standings orders submissions by votes, most voted first.
// Equal vote counts keep earlier submissions first.
func Standings(list []*entities.MemeSubmission) []*entities.MemeSubmission {
	out := make([]*entities.MemeSubmission, len(list))
	copy(out, list)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Votes != out[j].Votes {
			return out[i].Votes > out[j].Votes
		}
		return out[i].SubmittedAt < out[j].SubmittedAt
	})

	return out
}
