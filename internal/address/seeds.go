package address

// Seeds is the identifying input of a derived address.
type Seeds struct {
	Namespace Namespace
	Parts     [][]byte
}

// DeriveSeeds derives the address for s.
func (d Deriver) DeriveSeeds(s Seeds) (Address, uint8, error) {
	return d.Derive(s.Namespace, s.Parts...)
}

// VerifySeeds checks addr against seeds s and bump.
func (d Deriver) VerifySeeds(addr Address, bump uint8, s Seeds) error {
	return d.Verify(addr, bump, s.Namespace, s.Parts...)
}

// UserSeeds identifies the profile of owner.
func UserSeeds(owner Address) Seeds {
	return Seeds{Namespace: User, Parts: [][]byte{owner[:]}}
}

// GroupSeeds identifies a group by name and creator.
func GroupSeeds(name string, creator Address) Seeds {
	return Seeds{Namespace: Group, Parts: [][]byte{[]byte(name), creator[:]}}
}

// MemberSeeds identifies the membership of member in group.
func MemberSeeds(group, member Address) Seeds {
	return Seeds{Namespace: Member, Parts: [][]byte{group[:], member[:]}}
}

// InviteSeeds identifies an invite code of group.
func InviteSeeds(group Address, code string) Seeds {
	return Seeds{Namespace: Invite, Parts: [][]byte{group[:], []byte(code)}}
}

// ChallengeSeeds identifies a meme challenge by creator and start time.
func ChallengeSeeds(creator Address, startTime int64) Seeds {
	return Seeds{Namespace: Challenge, Parts: [][]byte{creator[:], Int64(startTime)}}
}

// SubmissionSeeds identifies the submission of submitter to challenge.
func SubmissionSeeds(challenge, submitter Address) Seeds {
	return Seeds{Namespace: Submission, Parts: [][]byte{challenge[:], submitter[:]}}
}

// VoterSeeds identifies the vote of voter on submission.
func VoterSeeds(submission, voter Address) Seeds {
	return Seeds{Namespace: Voter, Parts: [][]byte{submission[:], voter[:]}}
}

// EscrowSeeds identifies an escrow by initiator and creation time.
func EscrowSeeds(initiator Address, createdAt int64) Seeds {
	return Seeds{Namespace: Escrow, Parts: [][]byte{initiator[:], Int64(createdAt)}}
}

// VaultSeeds identifies the token account holding the deposit of escrow.
func VaultSeeds(escrow Address) Seeds {
	return Seeds{Namespace: Vault, Parts: [][]byte{escrow[:]}}
}

// MessageSeeds identifies the index-th message of group, sent by sender.
func MessageSeeds(group, sender Address, index uint64) Seeds {
	return Seeds{Namespace: Message, Parts: [][]byte{group[:], sender[:], Uint64(index)}}
}

// NonceSeeds identifies a request nonce consumed by signer.
func NonceSeeds(signer Address, nonce string) Seeds {
	return Seeds{Namespace: Nonce, Parts: [][]byte{signer[:], []byte(nonce)}}
}
