// Package entities contains records persisted by the service.
package entities

import (
	"fmt"
	"reflect"

	"github.com/near/borsh-go"

	"github.com/chumchon-net/chumchon/internal/address"
)

// Kind names a record sub-table.
type Kind string

// Record kinds.
const (
	KindUserProfile    Kind = "user"
	KindGroup          Kind = "group"
	KindGroupMember    Kind = "member"
	KindInvite         Kind = "invite"
	KindEscrow         Kind = "escrow"
	KindMemeChallenge  Kind = "challenge"
	KindMemeSubmission Kind = "submission"
	KindVoterRecord    Kind = "voter"
	KindMessage        Kind = "message"
	KindNativeAccount  Kind = "native"
	KindTokenAccount   Kind = "token"
	KindNonce          Kind = "nonce"
)

// Field caps. Reducing any of them is a breaking change of the persisted layout.
const (
	MaxUsernameLen          = 50
	MaxBioLen               = 200
	MaxProfilePictureURLLen = 200
	MaxTutorials            = 10
	MaxTutorialID           = 10
	TutorialReward          = 1000
	MaxGroupNameLen         = 32
	MaxGroupDescriptionLen  = 256
	MaxInviteCodeLen        = 32
	MaxMessageLen           = 1000
	MaxChallengeTitleLen    = 64
	MaxChallengeDescLen     = 256
	MaxChallengePromptLen   = 128
	MaxSubmissionURLLen     = 256
	MaxSubmissionTitleLen   = 64
	MaxSubmissionDescLen    = 256
)

// Record is a value stored under an address in the sub-table of its kind.
type Record interface {
	Kind() Kind
	// Parent is the address records of this kind are listed under.
	Parent() address.Address
}

// Derived is a record whose address is derived from its own fields.
type Derived interface {
	Record
	Seeds() address.Seeds
	GetBump() uint8
	SetBump(b uint8)
}

// Encode serializes r using its persisted layout.
func Encode(r Record) ([]byte, error) {
	v := reflect.Indirect(reflect.ValueOf(r))
	b, err := borsh.Serialize(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", r.Kind(), err)
	}
	return b, nil
}

// Decode deserializes data into r, which must be a pointer.
func Decode(data []byte, r Record) error {
	if err := borsh.Deserialize(r, data); err != nil {
		return fmt.Errorf("failed to decode %s: %w", r.Kind(), err)
	}
	return nil
}
