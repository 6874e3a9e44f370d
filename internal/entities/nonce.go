package entities

import "github.com/chumchon-net/chumchon/internal/address"

// NonceRecord marks a request nonce as consumed by Signer.
type NonceRecord struct {
	Signer address.Address
	Nonce  string
	UsedAt int64
	Bump   uint8
}

// Kind ...
func (*NonceRecord) Kind() Kind { return KindNonce }

// Parent ...
func (n *NonceRecord) Parent() address.Address { return n.Signer }

// Seeds ...
func (n *NonceRecord) Seeds() address.Seeds { return address.NonceSeeds(n.Signer, n.Nonce) }

// GetBump ...
func (n *NonceRecord) GetBump() uint8 { return n.Bump }

// SetBump ...
func (n *NonceRecord) SetBump(b uint8) { n.Bump = b }
