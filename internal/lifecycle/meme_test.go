package lifecycle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
)

func newTestChallenge(t *testing.T) *entities.MemeChallenge {
	c, err := NewChallenge(initiator, ChallengeParams{Title: "t", RewardAmount: 1, StartTime: 10, EndTime: 20}, 0)
	require.NoError(t, err)
	return c
}

func TestNewChallenge(t *testing.T) {
	valid := ChallengeParams{Title: "t", RewardAmount: 1, StartTime: 10, EndTime: 20}

	with := func(f func(p *ChallengeParams)) ChallengeParams {
		p := valid
		f(&p)
		return p
	}

	tt := []struct {
		name   string
		params ChallengeParams
		err    error
	}{
		{name: "valid", params: valid},
		{name: "long_title", params: with(func(p *ChallengeParams) { p.Title = strings.Repeat("t", 65) }), err: errs.ErrTitleTooLong},
		{name: "long_description", params: with(func(p *ChallengeParams) { p.Description = strings.Repeat("d", 257) }), err: errs.ErrDescriptionTooLong},
		{name: "long_prompt", params: with(func(p *ChallengeParams) { p.Prompt = strings.Repeat("p", 129) }), err: errs.ErrPromptTooLong},
		{name: "no_reward", params: with(func(p *ChallengeParams) { p.RewardAmount = 0 }), err: errs.ErrInvalidAmount},
		{name: "end_before_start", params: with(func(p *ChallengeParams) { p.EndTime = 10 }), err: errs.ErrInvalidExpiry},
		{name: "start_now", params: with(func(p *ChallengeParams) { p.StartTime = 5 }), err: errs.ErrInvalidExpiry},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewChallenge(initiator, tc.params, 5)
			assert.Equal(t, tc.err, err)
		})
	}
}

func TestChallenge_Lifecycle(t *testing.T) {
	c := newTestChallenge(t)
	challenge := address.Address{90}
	submission := address.Address{91}

	assert.Equal(t, ChallengeScheduled, StatusOfChallenge(c, 5))

	_, err := Submit(c, challenge, counterparty, SubmissionParams{Title: "m"}, 5)
	assert.Equal(t, errs.ErrChallengeNotStarted, err)
	_, err = Submit(c, challenge, counterparty, SubmissionParams{Title: strings.Repeat("m", 65)}, 15)
	assert.Equal(t, errs.ErrTitleTooLong, err)
	assert.Zero(t, c.SubmissionCount)

	s, err := Submit(c, challenge, counterparty, SubmissionParams{Title: "m", ImageURL: "https://x/y.png"}, 15)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), c.SubmissionCount)
	assert.Equal(t, ChallengeActive, StatusOfChallenge(c, 15))

	_, err = Vote(c, s, submission, counterparty, 16)
	assert.Equal(t, errs.ErrCannotVoteOwnSubmission, err)
	_, err = Vote(c, s, submission, stranger, 10)
	assert.Equal(t, errs.ErrChallengeInactive, err)

	v, err := Vote(c, s, submission, stranger, 16)
	require.NoError(t, err)
	assert.Equal(t, stranger, v.Voter)
	assert.Equal(t, uint32(1), s.Votes)
	assert.Equal(t, uint32(1), c.TotalVotes)

	_, err = Submit(c, challenge, stranger, SubmissionParams{}, 20)
	assert.Equal(t, errs.ErrChallengeEnded, err)
	_, err = Vote(c, s, submission, initiator, 20)
	assert.Equal(t, errs.ErrChallengeInactive, err)

	assert.Equal(t, errs.ErrChallengeNotEnded, EndChallenge(c, initiator, 19))
	assert.Equal(t, errs.ErrNotGroupCreator, EndChallenge(c, stranger, 25))
	require.NoError(t, EndChallenge(c, initiator, 25))
	assert.Equal(t, ChallengeCompleted, StatusOfChallenge(c, 25))
	assert.False(t, c.Winner.IsSome())

	assert.Equal(t, errs.ErrChallengeAlreadyCompleted, EndChallenge(c, initiator, 26))
}

func TestEndChallenge_NoSubmissions(t *testing.T) {
	c := newTestChallenge(t)

	assert.Equal(t, ChallengeEnded, StatusOfChallenge(c, 20))
	assert.Equal(t, errs.ErrNoSubmissions, EndChallenge(c, initiator, 25))
	assert.False(t, c.Completed)
}

func TestStandings(t *testing.T) {
	a := &entities.MemeSubmission{Title: "a", Votes: 1, SubmittedAt: 1}
	b := &entities.MemeSubmission{Title: "b", Votes: 3, SubmittedAt: 2}
	c := &entities.MemeSubmission{Title: "c", Votes: 1, SubmittedAt: 0}

	list := []*entities.MemeSubmission{a, b, c}
	assert.Equal(t, []*entities.MemeSubmission{b, c, a}, Standings(list))
	assert.Equal(t, []*entities.MemeSubmission{a, b, c}, list)
}
