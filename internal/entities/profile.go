package entities

import "github.com/chumchon-net/chumchon/internal/address"

// UserProfile is the profile of one owner identity.
type UserProfile struct {
	Owner              address.Address
	Username           string
	Bio                string
	ProfilePictureURL  Option[string]
	NFTProfilePicture  Option[address.Address]
	ShowBalance        bool
	CreatedAt          int64
	LastActive         int64
	CompletedTutorials []uint8
	TutorialRewards    uint64
	Bump               uint8
}

// Kind ...
func (*UserProfile) Kind() Kind { return KindUserProfile }

// Parent ...
func (*UserProfile) Parent() address.Address { return address.Zero }

// Seeds ...
func (p *UserProfile) Seeds() address.Seeds { return address.UserSeeds(p.Owner) }

// GetBump ...
func (p *UserProfile) GetBump() uint8 { return p.Bump }

// SetBump ...
func (p *UserProfile) SetBump(b uint8) { p.Bump = b }

// HasCompletedTutorial reports whether id is already recorded.
func (p *UserProfile) HasCompletedTutorial(id uint8) bool {
	for _, v := range p.CompletedTutorials {
		if v == id {
			return true
		}
	}
	return false
}
