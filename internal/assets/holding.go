package assets

import "github.com/chumchon-net/chumchon/internal/address"

// Holding is a token account as presented by a caller.
type Holding struct {
	Account address.Address
	Mint    address.Address
	Owner   address.Address
	Amount  uint64
}

// Presented is either a holding presented by the caller or nothing.
type Presented struct {
	holding Holding
	present bool
}

// Present wraps a presented holding.
func Present(h Holding) Presented {
	return Presented{holding: h, present: true}
}

// Absent means no holding was presented.
func Absent() Presented {
	return Presented{}
}

// Get returns the holding and whether it was presented.
func (p Presented) Get() (Holding, bool) {
	return p.holding, p.present
}
