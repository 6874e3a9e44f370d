package entities

import "github.com/chumchon-net/chumchon/internal/address"

// NativeAccount holds the native balance of Owner.
type NativeAccount struct {
	Owner    address.Address
	Lamports uint64
}

// Kind ...
func (*NativeAccount) Kind() Kind { return KindNativeAccount }

// Parent ...
func (*NativeAccount) Parent() address.Address { return address.Zero }

// TokenAccount holds Amount units of Mint on behalf of Owner.
type TokenAccount struct {
	Mint   address.Address
	Owner  address.Address
	Amount uint64
}

// Kind ...
func (*TokenAccount) Kind() Kind { return KindTokenAccount }

// Parent ...
func (a *TokenAccount) Parent() address.Address { return a.Owner }
