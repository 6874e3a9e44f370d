// Package service contains interface for service business-logic.
package service

import (
	"context"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock github.com/chumchon-net/chumchon/internal/service Service

// Service dispatches transitions and answers queries.
// Transitions take the caller identity set from the context, see auth.WithSigners.
type Service interface {
	CreateUserProfile(ctx context.Context, r CreateUserProfileRequest) (address.Address, error)
	UpdateUserProfile(ctx context.Context, r UpdateUserProfileRequest) error
	CompleteTutorial(ctx context.Context, r CompleteTutorialRequest) error
	SetProfileNFT(ctx context.Context, r SetProfileNFTRequest) error

	CreateGroup(ctx context.Context, r CreateGroupRequest) (address.Address, error)
	JoinGroup(ctx context.Context, r JoinGroupRequest) (address.Address, error)
	CreateInvite(ctx context.Context, r CreateInviteRequest) (address.Address, error)
	UseInvite(ctx context.Context, r UseInviteRequest) (address.Address, error)
	SendMessage(ctx context.Context, r SendMessageRequest) (address.Address, error)
	TipMessage(ctx context.Context, r TipMessageRequest) error

	CreateEscrow(ctx context.Context, r CreateEscrowRequest) (address.Address, error)
	AcceptEscrow(ctx context.Context, r AcceptEscrowRequest) error
	CompleteEscrow(ctx context.Context, r CompleteEscrowRequest) error

	CreateMemeChallenge(ctx context.Context, r CreateMemeChallengeRequest) (address.Address, error)
	SubmitMeme(ctx context.Context, r SubmitMemeRequest) (address.Address, error)
	VoteForMeme(ctx context.Context, r VoteForMemeRequest) (address.Address, error)
	EndMemeChallenge(ctx context.Context, r EndMemeChallengeRequest) error

	GetUserProfile(ctx context.Context, owner address.Address) (*entities.UserProfile, error)
	GetGroup(ctx context.Context, group address.Address) (*entities.Group, error)
	ListGroupMembers(ctx context.Context, group address.Address) ([]*entities.GroupMember, error)
	ListGroupMessages(ctx context.Context, group address.Address) ([]*entities.Message, error)
	ListGroupInvites(ctx context.Context, group address.Address) ([]*entities.Invite, error)
	GetInvite(ctx context.Context, invite address.Address) (*entities.Invite, error)
	GetMessage(ctx context.Context, message address.Address) (*entities.Message, error)
	GetEscrow(ctx context.Context, escrow address.Address) (*entities.Escrow, error)
	GetMemeChallenge(ctx context.Context, challenge address.Address) (*entities.MemeChallenge, error)
	// ListSubmissions returns standings of challenge, most voted first.
	ListSubmissions(ctx context.Context, challenge address.Address) ([]*entities.MemeSubmission, error)
	GetBalance(ctx context.Context, owner address.Address) (uint64, error)
	GetTokenAccount(ctx context.Context, account address.Address) (*entities.TokenAccount, error)
}
