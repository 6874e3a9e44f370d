package entities

import "github.com/chumchon-net/chumchon/internal/address"

// Group is an interest group or a broadcast channel.
type Group struct {
	Name                  string
	Description           string
	Creator               address.Address
	IsChannel             bool
	IsWhaleGroup          bool
	RequiredToken         Option[address.Address]
	RequiredAmount        uint64
	RequiredNFTCollection Option[address.Address]
	RequiredSolBalance    uint64
	MemberCount           uint32
	CreatedAt             int64
	LastMessageAt         int64
	MessageCount          uint64
	Bump                  uint8
}

// Kind ...
func (*Group) Kind() Kind { return KindGroup }

// Parent ...
func (g *Group) Parent() address.Address { return g.Creator }

// Seeds ...
func (g *Group) Seeds() address.Seeds { return address.GroupSeeds(g.Name, g.Creator) }

// GetBump ...
func (g *Group) GetBump() uint8 { return g.Bump }

// SetBump ...
func (g *Group) SetBump(b uint8) { g.Bump = b }

// GroupMember records that Member joined Group.
type GroupMember struct {
	Group    address.Address
	Member   address.Address
	JoinedAt int64
	Bump     uint8
}

// Kind ...
func (*GroupMember) Kind() Kind { return KindGroupMember }

// Parent ...
func (m *GroupMember) Parent() address.Address { return m.Group }

// Seeds ...
func (m *GroupMember) Seeds() address.Seeds { return address.MemberSeeds(m.Group, m.Member) }

// GetBump ...
func (m *GroupMember) GetBump() uint8 { return m.Bump }

// SetBump ...
func (m *GroupMember) SetBump(b uint8) { m.Bump = b }

// Invite is a limited-use, expiring code granting membership of Group.
type Invite struct {
	Group     address.Address
	Creator   address.Address
	Code      string
	MaxUses   uint32
	Uses      uint32
	ExpiresAt int64
	Bump      uint8
}

// Kind ...
func (*Invite) Kind() Kind { return KindInvite }

// Parent ...
func (i *Invite) Parent() address.Address { return i.Group }

// Seeds ...
func (i *Invite) Seeds() address.Seeds { return address.InviteSeeds(i.Group, i.Code) }

// GetBump ...
func (i *Invite) GetBump() uint8 { return i.Bump }

// SetBump ...
func (i *Invite) SetBump(b uint8) { i.Bump = b }

// Message is a post of Sender in Group. Its address also includes Index, the
// group message counter at send time, so one sender can post many messages.
type Message struct {
	Group        address.Address
	Sender       address.Address
	Content      string
	Timestamp    int64
	TipsReceived uint64
	Index        uint64
	Bump         uint8
}

// Kind ...
func (*Message) Kind() Kind { return KindMessage }

// Parent ...
func (m *Message) Parent() address.Address { return m.Group }

// Seeds ...
func (m *Message) Seeds() address.Seeds { return address.MessageSeeds(m.Group, m.Sender, m.Index) }

// GetBump ...
func (m *Message) GetBump() uint8 { return m.Bump }

// SetBump ...
func (m *Message) SetBump(b uint8) { m.Bump = b }
