package server

import (
	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/lifecycle"
)

// Error ...
type Error struct {
	Error string `json:"error"`
	// Code is the typed failure reason, e.g. InviteUsed.
	Code     string `json:"code,omitempty"`
	Category string `json:"category,omitempty"`
}

// CreatedResponse is returned by transitions which create a record.
type CreatedResponse struct {
	Address address.Address `json:"address"`
}

// BalanceResponse ...
type BalanceResponse struct {
	Owner    address.Address `json:"owner"`
	Lamports uint64          `json:"lamports"`
}

// CreateProfileRequest ...
type CreateProfileRequest struct {
	Owner       address.Address `json:"owner"`
	Username    string          `json:"username"`
	Bio         string          `json:"bio"`
	ShowBalance bool            `json:"show_balance"`
}

// UpdateProfileRequest ...
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	// ProfilePictureURL keeps the current picture when omitted.
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	ShowBalance       bool    `json:"show_balance"`
}

// TutorialRequest ...
type TutorialRequest struct {
	TutorialID uint8 `json:"tutorial_id"`
}

// ProfileNFTRequest ...
type ProfileNFTRequest struct {
	Mint         address.Address `json:"mint"`
	TokenAccount address.Address `json:"token_account"`
}

// CreateGroupRequest ...
type CreateGroupRequest struct {
	Creator               address.Address  `json:"creator"`
	Name                  string           `json:"name"`
	Description           string           `json:"description"`
	IsChannel             bool             `json:"is_channel"`
	IsWhaleGroup          bool             `json:"is_whale_group"`
	RequiredToken         *address.Address `json:"required_token,omitempty"`
	RequiredAmount        uint64           `json:"required_amount"`
	RequiredNFTCollection *address.Address `json:"required_nft_collection,omitempty"`
	RequiredSolBalance    uint64           `json:"required_sol_balance"`
}

// JoinGroupRequest ...
type JoinGroupRequest struct {
	Member       address.Address  `json:"member"`
	TokenAccount *address.Address `json:"token_account,omitempty"`
	NFTAccount   *address.Address `json:"nft_account,omitempty"`
}

// CreateInviteRequest ...
type CreateInviteRequest struct {
	Creator   address.Address `json:"creator"`
	Code      string          `json:"code"`
	MaxUses   uint32          `json:"max_uses"`
	ExpiresAt int64           `json:"expires_at"`
}

// MemberRequest ...
type MemberRequest struct {
	Member address.Address `json:"member"`
}

// SendMessageRequest ...
type SendMessageRequest struct {
	Sender  address.Address `json:"sender"`
	Content string          `json:"content"`
}

// TipRequest ...
type TipRequest struct {
	Tipper    address.Address  `json:"tipper"`
	Recipient *address.Address `json:"recipient,omitempty"`
	Amount    uint64           `json:"amount"`
}

// CreateEscrowRequest ...
type CreateEscrowRequest struct {
	Initiator             address.Address `json:"initiator"`
	Counterparty          address.Address `json:"counterparty"`
	Group                 address.Address `json:"group"`
	InitiatorTokenAccount address.Address `json:"initiator_token_account"`
	InitiatorAmount       uint64          `json:"initiator_amount"`
	CounterpartyToken     address.Address `json:"counterparty_token"`
	CounterpartyAmount    uint64          `json:"counterparty_amount"`
	CreatedAt             int64           `json:"created_at"`
	ExpiresAt             int64           `json:"expires_at"`
}

// EscrowPartyRequest ...
type EscrowPartyRequest struct {
	Caller address.Address `json:"caller"`
}

// CreateChallengeRequest ...
type CreateChallengeRequest struct {
	Creator      address.Address `json:"creator"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Prompt       string          `json:"prompt"`
	RewardAmount uint64          `json:"reward_amount"`
	StartTime    int64           `json:"start_time"`
	EndTime      int64           `json:"end_time"`
}

// SubmitMemeRequest ...
type SubmitMemeRequest struct {
	Submitter   address.Address `json:"submitter"`
	ImageURL    string          `json:"image_url"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
}

// VoteRequest ...
type VoteRequest struct {
	Voter address.Address `json:"voter"`
}

// EndChallengeRequest ...
type EndChallengeRequest struct {
	Creator address.Address `json:"creator"`
}

// Profile ...
type Profile struct {
	Owner              address.Address  `json:"owner"`
	Username           string           `json:"username"`
	Bio                string           `json:"bio"`
	ProfilePictureURL  *string          `json:"profile_picture_url,omitempty"`
	NFTProfilePicture  *address.Address `json:"nft_profile_picture,omitempty"`
	ShowBalance        bool             `json:"show_balance"`
	CreatedAt          int64            `json:"created_at"`
	LastActive         int64            `json:"last_active"`
	CompletedTutorials []uint8          `json:"completed_tutorials"`
	TutorialRewards    uint64           `json:"tutorial_rewards"`
}

// Group ...
type Group struct {
	Name                  string           `json:"name"`
	Description           string           `json:"description"`
	Creator               address.Address  `json:"creator"`
	IsChannel             bool             `json:"is_channel"`
	IsWhaleGroup          bool             `json:"is_whale_group"`
	RequiredToken         *address.Address `json:"required_token,omitempty"`
	RequiredAmount        uint64           `json:"required_amount"`
	RequiredNFTCollection *address.Address `json:"required_nft_collection,omitempty"`
	RequiredSolBalance    uint64           `json:"required_sol_balance"`
	MemberCount           uint32           `json:"member_count"`
	CreatedAt             int64            `json:"created_at"`
	LastMessageAt         int64            `json:"last_message_at"`
	MessageCount          uint64           `json:"message_count"`
}

// Member ...
type Member struct {
	Group    address.Address `json:"group"`
	Member   address.Address `json:"member"`
	JoinedAt int64           `json:"joined_at"`
}

// Invite ...
type Invite struct {
	Group     address.Address `json:"group"`
	Creator   address.Address `json:"creator"`
	Code      string          `json:"code"`
	MaxUses   uint32          `json:"max_uses"`
	Uses      uint32          `json:"uses"`
	ExpiresAt int64           `json:"expires_at"`
	Status    string          `json:"status"`
}

// Message ...
type Message struct {
	Group        address.Address `json:"group"`
	Sender       address.Address `json:"sender"`
	Index        uint64          `json:"index"`
	Content      string          `json:"content"`
	Timestamp    int64           `json:"timestamp"`
	TipsReceived uint64          `json:"tips_received"`
}

// Escrow ...
type Escrow struct {
	Initiator          address.Address `json:"initiator"`
	Counterparty       address.Address `json:"counterparty"`
	Group              address.Address `json:"group"`
	InitiatorToken     address.Address `json:"initiator_token"`
	InitiatorAmount    uint64          `json:"initiator_amount"`
	CounterpartyToken  address.Address `json:"counterparty_token"`
	CounterpartyAmount uint64          `json:"counterparty_amount"`
	Status             string          `json:"status"`
	CreatedAt          int64           `json:"created_at"`
	ExpiresAt          int64           `json:"expires_at"`
	AcceptedAt         *int64          `json:"accepted_at,omitempty"`
	CompletedAt        *int64          `json:"completed_at,omitempty"`
}

// Challenge ...
type Challenge struct {
	Creator         address.Address  `json:"creator"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Prompt          string           `json:"prompt"`
	RewardAmount    uint64           `json:"reward_amount"`
	StartTime       int64            `json:"start_time"`
	EndTime         int64            `json:"end_time"`
	SubmissionCount uint32           `json:"submission_count"`
	TotalVotes      uint32           `json:"total_votes"`
	Winner          *address.Address `json:"winner,omitempty"`
	Completed       bool             `json:"completed"`
	Status          string           `json:"status"`
}

// Submission ...
type Submission struct {
	Challenge   address.Address `json:"challenge"`
	Submitter   address.Address `json:"submitter"`
	ImageURL    string          `json:"image_url"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Votes       uint32          `json:"votes"`
	SubmittedAt int64           `json:"submitted_at"`
}

// TokenAccount ...
type TokenAccount struct {
	Address address.Address `json:"address"`
	Mint    address.Address `json:"mint"`
	Owner   address.Address `json:"owner"`
	Amount  uint64          `json:"amount"`
}

func toProfile(p *entities.UserProfile) Profile {
	tutorials := p.CompletedTutorials
	if tutorials == nil {
		tutorials = []uint8{}
	}

	return Profile{
		Owner:              p.Owner,
		Username:           p.Username,
		Bio:                p.Bio,
		ProfilePictureURL:  p.ProfilePictureURL.Ptr(),
		NFTProfilePicture:  p.NFTProfilePicture.Ptr(),
		ShowBalance:        p.ShowBalance,
		CreatedAt:          p.CreatedAt,
		LastActive:         p.LastActive,
		CompletedTutorials: tutorials,
		TutorialRewards:    p.TutorialRewards,
	}
}

func toGroup(g *entities.Group) Group {
	return Group{
		Name:                  g.Name,
		Description:           g.Description,
		Creator:               g.Creator,
		IsChannel:             g.IsChannel,
		IsWhaleGroup:          g.IsWhaleGroup,
		RequiredToken:         g.RequiredToken.Ptr(),
		RequiredAmount:        g.RequiredAmount,
		RequiredNFTCollection: g.RequiredNFTCollection.Ptr(),
		RequiredSolBalance:    g.RequiredSolBalance,
		MemberCount:           g.MemberCount,
		CreatedAt:             g.CreatedAt,
		LastMessageAt:         g.LastMessageAt,
		MessageCount:          g.MessageCount,
	}
}

func toMember(m *entities.GroupMember) Member {
	return Member{Group: m.Group, Member: m.Member, JoinedAt: m.JoinedAt}
}

func toMessage(m *entities.Message) Message {
	return Message{
		Group:        m.Group,
		Sender:       m.Sender,
		Index:        m.Index,
		Content:      m.Content,
		Timestamp:    m.Timestamp,
		TipsReceived: m.TipsReceived,
	}
}

func toSubmission(s *entities.MemeSubmission) Submission {
	return Submission{
		Challenge:   s.Challenge,
		Submitter:   s.Submitter,
		ImageURL:    s.ImageURL,
		Title:       s.Title,
		Description: s.Description,
		Votes:       s.Votes,
		SubmittedAt: s.SubmittedAt,
	}
}

func escrowStatus(s uint8) string {
	switch s {
	case entities.EscrowCreated:
		return "created"
	case entities.EscrowAccepted:
		return "accepted"
	case entities.EscrowCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

func toEscrow(e *entities.Escrow) Escrow {
	return Escrow{
		Initiator:          e.Initiator,
		Counterparty:       e.Counterparty,
		Group:              e.Group,
		InitiatorToken:     e.InitiatorToken,
		InitiatorAmount:    e.InitiatorAmount,
		CounterpartyToken:  e.CounterpartyToken,
		CounterpartyAmount: e.CounterpartyAmount,
		Status:             escrowStatus(e.Status),
		CreatedAt:          e.CreatedAt,
		ExpiresAt:          e.ExpiresAt,
		AcceptedAt:         e.AcceptedAt.Ptr(),
		CompletedAt:        e.CompletedAt.Ptr(),
	}
}

func toInvite(i *entities.Invite, now int64) Invite {
	return Invite{
		Group:     i.Group,
		Creator:   i.Creator,
		Code:      i.Code,
		MaxUses:   i.MaxUses,
		Uses:      i.Uses,
		ExpiresAt: i.ExpiresAt,
		Status:    string(lifecycle.StatusOf(i, now)),
	}
}

func toChallenge(c *entities.MemeChallenge, now int64) Challenge {
	return Challenge{
		Creator:         c.Creator,
		Title:           c.Title,
		Description:     c.Description,
		Prompt:          c.Prompt,
		RewardAmount:    c.RewardAmount,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		SubmissionCount: c.SubmissionCount,
		TotalVotes:      c.TotalVotes,
		Winner:          c.Winner.Ptr(),
		Completed:       c.Completed,
		Status:          string(lifecycle.StatusOfChallenge(c, now)),
	}
}

func toTokenAccount(addr address.Address, a *entities.TokenAccount) TokenAccount {
	return TokenAccount{Address: addr, Mint: a.Mint, Owner: a.Owner, Amount: a.Amount}
}
