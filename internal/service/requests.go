package service

import "github.com/chumchon-net/chumchon/internal/address"

// CreateUserProfileRequest ...
type CreateUserProfileRequest struct {
	Owner       address.Address
	Username    string
	Bio         string
	ShowBalance bool
}

// UpdateUserProfileRequest ...
type UpdateUserProfileRequest struct {
	Owner             address.Address
	Username          string
	Bio               string
	ProfilePictureURL *string
	ShowBalance       bool
}

// CompleteTutorialRequest ...
type CompleteTutorialRequest struct {
	Owner      address.Address
	TutorialID uint8
}

// SetProfileNFTRequest ...
type SetProfileNFTRequest struct {
	Owner        address.Address
	Mint         address.Address
	TokenAccount address.Address
}

// CreateGroupRequest ...
type CreateGroupRequest struct {
	Creator               address.Address
	Name                  string
	Description           string
	IsChannel             bool
	IsWhaleGroup          bool
	RequiredToken         *address.Address
	RequiredAmount        uint64
	RequiredNFTCollection *address.Address
	RequiredSolBalance    uint64
}

// JoinGroupRequest carries optional holdings presented to pass group gates.
type JoinGroupRequest struct {
	Group        address.Address
	Member       address.Address
	TokenAccount *address.Address
	NFTAccount   *address.Address
}

// CreateInviteRequest ...
type CreateInviteRequest struct {
	Group     address.Address
	Creator   address.Address
	Code      string
	MaxUses   uint32
	ExpiresAt int64
}

// UseInviteRequest ...
type UseInviteRequest struct {
	Group  address.Address
	Code   string
	Member address.Address
}

// SendMessageRequest ...
type SendMessageRequest struct {
	Group   address.Address
	Sender  address.Address
	Content string
}

// TipMessageRequest is a tip of Amount native units to the sender of Message.
// Recipient is optional; when set it must be the message sender.
type TipMessageRequest struct {
	Message   address.Address
	Tipper    address.Address
	Recipient *address.Address
	Amount    uint64
}

// CreateEscrowRequest deposits InitiatorAmount from InitiatorTokenAccount into the escrow vault.
// CreatedAt is supplied by the initiator and identifies the escrow.
type CreateEscrowRequest struct {
	Initiator             address.Address
	Counterparty          address.Address
	Group                 address.Address
	InitiatorTokenAccount address.Address
	InitiatorAmount       uint64
	CounterpartyToken     address.Address
	CounterpartyAmount    uint64
	CreatedAt             int64
	ExpiresAt             int64
}

// AcceptEscrowRequest ...
type AcceptEscrowRequest struct {
	Escrow       address.Address
	Counterparty address.Address
}

// CompleteEscrowRequest ...
type CompleteEscrowRequest struct {
	Escrow    address.Address
	Initiator address.Address
}

// CreateMemeChallengeRequest ...
type CreateMemeChallengeRequest struct {
	Creator      address.Address
	Title        string
	Description  string
	Prompt       string
	RewardAmount uint64
	StartTime    int64
	EndTime      int64
}

// SubmitMemeRequest ...
type SubmitMemeRequest struct {
	Challenge   address.Address
	Submitter   address.Address
	ImageURL    string
	Title       string
	Description string
}

// VoteForMemeRequest ...
type VoteForMemeRequest struct {
	Submission address.Address
	Voter      address.Address
}

// EndMemeChallengeRequest ...
type EndMemeChallengeRequest struct {
	Challenge address.Address
	Creator   address.Address
}
