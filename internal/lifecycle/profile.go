package lifecycle

import (
	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/assets"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/guard"
)

// ProfileFields are the user editable fields of a profile.
type ProfileFields struct {
	Username          string
	Bio               string
	ProfilePictureURL *string
	ShowBalance       bool
}

func (f ProfileFields) validate() error {
	var url string
	if f.ProfilePictureURL != nil {
		url = *f.ProfilePictureURL
	}

	return guard.Require(
		guard.MaxLen(f.Username, entities.MaxUsernameLen, errs.ErrNameTooLong),
		guard.MaxLen(f.Bio, entities.MaxBioLen, errs.ErrBioTooLong),
		guard.MaxLen(url, entities.MaxProfilePictureURLLen, errs.ErrURLTooLong),
	)
}

// NewProfile creates the profile of owner.
func NewProfile(owner address.Address, f ProfileFields, now int64) (*entities.UserProfile, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	return &entities.UserProfile{
		Owner:             owner,
		Username:          f.Username,
		Bio:               f.Bio,
		ProfilePictureURL: entities.OptionOf(f.ProfilePictureURL),
		ShowBalance:       f.ShowBalance,
		CreatedAt:         now,
		LastActive:        now,
	}, nil
}

// UpdateProfile replaces editable fields of p and touches last_active.
// A nil picture URL keeps the current one.
func UpdateProfile(p *entities.UserProfile, caller address.Address, f ProfileFields, now int64) error {
	if err := guard.Owns(p.Owner, caller); err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	p.Username = f.Username
	p.Bio = f.Bio
	p.ShowBalance = f.ShowBalance
	if f.ProfilePictureURL != nil {
		p.ProfilePictureURL = entities.Some(*f.ProfilePictureURL)
	}
	p.LastActive = now

	return nil
}

// CompleteTutorial records tutorial id and credits its reward.
func CompleteTutorial(p *entities.UserProfile, caller address.Address, id uint8) error {
	if err := guard.Owns(p.Owner, caller); err != nil {
		return err
	}
	if p.HasCompletedTutorial(id) {
		return errs.ErrTutorialAlreadyCompleted
	}
	if id > entities.MaxTutorialID {
		return errs.ErrInvalidTutorialID
	}
	if len(p.CompletedTutorials) >= entities.MaxTutorials {
		return errs.ErrTutorialLimitReached
	}

	p.CompletedTutorials = append(p.CompletedTutorials, id)
	p.TutorialRewards += entities.TutorialReward

	return nil
}

// SetProfileNFT sets the NFT profile picture of p to mint, which nft must hold.
func SetProfileNFT(p *entities.UserProfile, caller address.Address, mint address.Address, nft assets.Presented) error {
	if err := guard.Owns(p.Owner, caller); err != nil {
		return err
	}

	h, ok := nft.Get()
	if !ok {
		return errs.ErrNoNFT
	}

	switch {
	case h.Owner != caller:
		return errs.ErrNotOwner
	case h.Amount != 1:
		return errs.ErrNoNFT
	case h.Mint != mint:
		return errs.ErrInvalidMint
	}

	p.NFTProfilePicture = entities.Some(mint)

	return nil
}
