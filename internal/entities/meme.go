package entities

import "github.com/chumchon-net/chumchon/internal/address"

// MemeChallenge is a time-boxed meme contest.
type MemeChallenge struct {
	Creator         address.Address
	Title           string
	Description     string
	Prompt          string
	RewardAmount    uint64
	StartTime       int64
	EndTime         int64
	SubmissionCount uint32
	TotalVotes      uint32
	Winner          Option[address.Address]
	Completed       bool
	Bump            uint8
}

// Kind ...
func (*MemeChallenge) Kind() Kind { return KindMemeChallenge }

// Parent ...
func (c *MemeChallenge) Parent() address.Address { return c.Creator }

// Seeds ...
func (c *MemeChallenge) Seeds() address.Seeds { return address.ChallengeSeeds(c.Creator, c.StartTime) }

// GetBump ...
func (c *MemeChallenge) GetBump() uint8 { return c.Bump }

// SetBump ...
func (c *MemeChallenge) SetBump(b uint8) { c.Bump = b }

// MemeSubmission is the single entry of Submitter to Challenge.
type MemeSubmission struct {
	Challenge   address.Address
	Submitter   address.Address
	ImageURL    string
	Title       string
	Description string
	Votes       uint32
	SubmittedAt int64
	Bump        uint8
}

// Kind ...
func (*MemeSubmission) Kind() Kind { return KindMemeSubmission }

// Parent ...
func (s *MemeSubmission) Parent() address.Address { return s.Challenge }

// Seeds ...
func (s *MemeSubmission) Seeds() address.Seeds {
	return address.SubmissionSeeds(s.Challenge, s.Submitter)
}

// GetBump ...
func (s *MemeSubmission) GetBump() uint8 { return s.Bump }

// SetBump ...
func (s *MemeSubmission) SetBump(b uint8) { s.Bump = b }

// VoterRecord proves that Voter already voted on Submission.
type VoterRecord struct {
	Submission address.Address
	Voter      address.Address
	VotedAt    int64
	Bump       uint8
}

// Kind ...
func (*VoterRecord) Kind() Kind { return KindVoterRecord }

// Parent ...
func (v *VoterRecord) Parent() address.Address { return v.Submission }

// Seeds ...
func (v *VoterRecord) Seeds() address.Seeds { return address.VoterSeeds(v.Submission, v.Voter) }

// GetBump ...
func (v *VoterRecord) GetBump() uint8 { return v.Bump }

// SetBump ...
func (v *VoterRecord) SetBump(b uint8) { v.Bump = b }
