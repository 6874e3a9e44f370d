package entities

import "github.com/chumchon-net/chumchon/internal/address"

// Escrow statuses, in lifecycle order.
const (
	EscrowCreated uint8 = iota
	EscrowAccepted
	EscrowCompleted
)

// Escrow is a peer-to-peer trade between Initiator and Counterparty.
type Escrow struct {
	Initiator          address.Address
	Counterparty       address.Address
	Group              address.Address
	InitiatorToken     address.Address
	InitiatorAmount    uint64
	CounterpartyToken  address.Address
	CounterpartyAmount uint64
	Status             uint8
	CreatedAt          int64
	ExpiresAt          int64
	Accepted           bool
	AcceptedAt         Option[int64]
	Completed          bool
	CompletedAt        Option[int64]
	Bump               uint8
}

// Kind ...
func (*Escrow) Kind() Kind { return KindEscrow }

// Parent ...
func (e *Escrow) Parent() address.Address { return e.Initiator }

// Seeds ...
func (e *Escrow) Seeds() address.Seeds { return address.EscrowSeeds(e.Initiator, e.CreatedAt) }

// GetBump ...
func (e *Escrow) GetBump() uint8 { return e.Bump }

// SetBump ...
func (e *Escrow) SetBump(b uint8) { e.Bump = b }
