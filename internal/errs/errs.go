// Package errs contains typed failure reasons returned by transitions.
package errs

import (
	"errors"
	"fmt"
)

// Category groups failure reasons by how a caller should react to them.
type Category uint8

const (
	// Validation means the input is malformed; the caller may retry with corrected input.
	Validation Category = iota + 1
	// Precondition means current record state forbids the transition; the caller should re-query state.
	Precondition
	// Authorization is a genuine permission denial.
	Authorization
	// External is a failure surfaced by an external capability (assets, holdings).
	External
)

func (c Category) String() string {
	switch c {
	case Validation:
		return "validation"
	case Precondition:
		return "precondition"
	case Authorization:
		return "authorization"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// Error is a typed failure reason.
type Error struct {
	Code     string
	Category Category
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(c Category, code, msg string) *Error {
	return &Error{Code: code, Category: c, Message: msg}
}

// As extracts a typed failure reason from err.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Input validation.
var (
	ErrNameTooLong        = newError(Validation, "NameTooLong", "Username is too long.")
	ErrBioTooLong         = newError(Validation, "BioTooLong", "Bio is too long.")
	ErrContentTooLong     = newError(Validation, "ContentTooLong", "Content is too long.")
	ErrURLTooLong         = newError(Validation, "UrlTooLong", "URL is too long.")
	ErrTitleTooLong       = newError(Validation, "TitleTooLong", "Title is too long.")
	ErrDescriptionTooLong = newError(Validation, "DescriptionTooLong", "Description is too long.")
	ErrPromptTooLong      = newError(Validation, "PromptTooLong", "Prompt is too long.")
	ErrCodeTooLong        = newError(Validation, "CodeTooLong", "Code is too long.")
	ErrInvalidAmount      = newError(Validation, "InvalidAmount", "Invalid amount.")
	ErrInvalidMaxUses     = newError(Validation, "InvalidMaxUses", "Invalid max uses for invite.")
	ErrInvalidExpiry      = newError(Validation, "InvalidExpiry", "Expiry date is in the past.")
	ErrInvalidTutorialID  = newError(Validation, "InvalidTutorialId", "Invalid tutorial ID.")
	ErrInvalidRecipient   = newError(Validation, "InvalidRecipient", "Invalid recipient for tip.")
)

// State preconditions.
var (
	ErrNotFound                  = newError(Precondition, "NotFound", "Record does not exist.")
	ErrAlreadyExists             = newError(Precondition, "AlreadyExists", "Record already exists.")
	ErrAddressMismatch           = newError(Precondition, "AddressMismatch", "Record address does not match its derivation.")
	ErrInviteExpired             = newError(Precondition, "InviteExpired", "This invite has expired")
	ErrInviteUsed                = newError(Precondition, "InviteUsed", "This invite has reached its maximum number of uses")
	ErrInvalidInvite             = newError(Precondition, "InvalidInvite", "Invalid invite.")
	ErrChallengeEnded            = newError(Precondition, "ChallengeEnded", "This meme challenge has already ended")
	ErrChallengeNotStarted       = newError(Precondition, "ChallengeNotStarted", "This meme challenge has not started yet")
	ErrChallengeInactive         = newError(Precondition, "ChallengeInactive", "Challenge is not active.")
	ErrChallengeNotEnded         = newError(Precondition, "ChallengeNotEnded", "Challenge has not ended yet.")
	ErrChallengeAlreadyCompleted = newError(Precondition, "ChallengeAlreadyCompleted", "Challenge has already been completed.")
	ErrNoSubmissions             = newError(Precondition, "NoSubmissions", "No submissions to determine a winner.")
	ErrAlreadyVoted              = newError(Precondition, "AlreadyVoted", "You have already voted.")
	ErrCannotVoteOwnSubmission   = newError(Precondition, "CannotVoteOwnSubmission", "You cannot vote for your own submission.")
	ErrTutorialAlreadyCompleted  = newError(Precondition, "TutorialAlreadyCompleted", "Tutorial has already been completed.")
	ErrTutorialLimitReached      = newError(Precondition, "TutorialLimitReached", "No more tutorials can be recorded.")
	ErrEscrowAlreadyAccepted     = newError(Precondition, "EscrowAlreadyAccepted", "The escrow has already been accepted.")
	ErrEscrowAlreadyCompleted    = newError(Precondition, "EscrowAlreadyCompleted", "The escrow has already been completed.")
	ErrEscrowExpired             = newError(Precondition, "EscrowExpired", "The escrow has expired.")
	ErrEscrowNotAccepted         = newError(Precondition, "EscrowNotAccepted", "The escrow has not been accepted by the counterparty yet.")
)

// Authorization.
var (
	ErrUnauthorized             = newError(Authorization, "Unauthorized", "Unauthorized")
	ErrNotOwner                 = newError(Authorization, "NotOwner", "You are not the owner of this account.")
	ErrNotGroupMember           = newError(Authorization, "NotGroupMember", "User is not a member of this group")
	ErrNotGroupCreator          = newError(Authorization, "NotGroupCreator", "Only the creator can perform this action")
	ErrChannelPostingRestricted = newError(Authorization, "ChannelPostingRestricted", "Only the creator can post in a channel")
	ErrReplayedRequest          = newError(Authorization, "ReplayedRequest", "Request was already applied")
)

// External capabilities.
var (
	ErrInsufficientFunds        = newError(External, "InsufficientFunds", "Insufficient funds for transfer.")
	ErrInsufficientTokenBalance = newError(External, "InsufficientTokenBalance", "User does not have enough tokens to join this group")
	ErrInsufficientSolBalance   = newError(External, "InsufficientSolBalance", "User does not have enough SOL to join this whale group")
	ErrInvalidToken             = newError(External, "InvalidToken", "The token is not valid for this group.")
	ErrNoNFT                    = newError(External, "NoNFT", "You do not hold the required NFT.")
	ErrInvalidNFT               = newError(External, "InvalidNFT", "The NFT is not valid for this group.")
	ErrInvalidMint              = newError(External, "InvalidMint", "Invalid mint for NFT profile picture.")
)

// All lists every failure reason, in declaration order.
func All() []*Error {
	return []*Error{
		ErrNameTooLong, ErrBioTooLong, ErrContentTooLong, ErrURLTooLong, ErrTitleTooLong,
		ErrDescriptionTooLong, ErrPromptTooLong, ErrCodeTooLong, ErrInvalidAmount, ErrInvalidMaxUses,
		ErrInvalidExpiry, ErrInvalidTutorialID, ErrInvalidRecipient,

		ErrNotFound, ErrAlreadyExists, ErrAddressMismatch, ErrInviteExpired, ErrInviteUsed,
		ErrInvalidInvite, ErrChallengeEnded, ErrChallengeNotStarted, ErrChallengeInactive,
		ErrChallengeNotEnded, ErrChallengeAlreadyCompleted, ErrNoSubmissions, ErrAlreadyVoted,
		ErrCannotVoteOwnSubmission, ErrTutorialAlreadyCompleted, ErrTutorialLimitReached,
		ErrEscrowAlreadyAccepted, ErrEscrowAlreadyCompleted, ErrEscrowExpired, ErrEscrowNotAccepted,

		ErrUnauthorized, ErrNotOwner, ErrNotGroupMember, ErrNotGroupCreator, ErrChannelPostingRestricted,
		ErrReplayedRequest,

		ErrInsufficientFunds, ErrInsufficientTokenBalance, ErrInsufficientSolBalance, ErrInvalidToken,
		ErrNoNFT, ErrInvalidNFT, ErrInvalidMint,
	}
}
