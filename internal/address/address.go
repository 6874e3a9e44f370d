// Package address derives deterministic record addresses from identifying fields.
package address

import (
	"encoding/binary"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcutil/base58"
	"lukechampine.com/blake3"

	"github.com/chumchon-net/chumchon/internal/errs"
)

// Size is the length of an address in bytes.
const Size = 32

const marker = "ChumchonDerivedAddress"

// Namespace tags a family of derived addresses.
type Namespace string

// Namespaces used by records.
const (
	User       Namespace = "user"
	Group      Namespace = "group"
	Member     Namespace = "member"
	Invite     Namespace = "invite"
	Challenge  Namespace = "challenge"
	Submission Namespace = "submission"
	Voter      Namespace = "voter"
	Escrow     Namespace = "escrow"
	Message    Namespace = "message"
	Vault      Namespace = "vault"
	Nonce      Namespace = "nonce"
)

// ErrNoViableBump is returned when every bump yields an on-curve address.
var ErrNoViableBump = errors.New("unable to find a viable bump")

// ErrInvalidAddress is returned when a text address can not be decoded.
var ErrInvalidAddress = errors.New("invalid address")

// Address is a 32-byte record locator or identity public key.
type Address [Size]byte

// Zero is the empty address.
var Zero Address

// String returns base58 form of the address.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == Zero
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, a[:])
	return b
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Parse decodes base58 address.
func Parse(s string) (Address, error) {
	b := base58.Decode(s)
	if len(b) != Size {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return FromBytes(b)
}

// FromBytes converts a 32-byte slice into an address.
func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Size {
		return a, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, Size, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Deriver computes addresses owned by one program.
type Deriver struct {
	program Address
}

// NewDeriver creates new instance of Deriver for program.
func NewDeriver(program Address) Deriver {
	return Deriver{program: program}
}

// Program returns the program address the deriver is bound to.
func (d Deriver) Program() Address {
	return d.program
}

// Derive returns the canonical address and bump for (ns, parts).
// The bump is searched from 255 downwards; the first candidate that is not a
// valid ed25519 point wins, so no private key can sign for the address.
func (d Deriver) Derive(ns Namespace, parts ...[]byte) (Address, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		candidate := d.candidate(ns, parts, uint8(bump))
		if !onCurve(candidate) {
			return candidate, uint8(bump), nil
		}
	}
	return Zero, 0, ErrNoViableBump
}

// Verify checks that addr is the address derived from (ns, parts) with bump.
func (d Deriver) Verify(addr Address, bump uint8, ns Namespace, parts ...[]byte) error {
	candidate := d.candidate(ns, parts, bump)
	if candidate != addr || onCurve(candidate) {
		return fmt.Errorf("%w: %s namespace, expected=%s", errs.ErrAddressMismatch, ns, candidate)
	}
	return nil
}

func (d Deriver) candidate(ns Namespace, parts [][]byte, bump uint8) Address {
	h := blake3.New(Size, nil)

	writePart(h, []byte(ns))
	for _, p := range parts {
		writePart(h, p)
	}
	_, _ = h.Write([]byte{bump})
	_, _ = h.Write(d.program[:])
	_, _ = h.Write([]byte(marker))

	var out Address
	copy(out[:], h.Sum(nil))
	return out
}

func writePart(h interface{ Write([]byte) (int, error) }, p []byte) {
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(p)))
	_, _ = h.Write(l[:])
	_, _ = h.Write(p)
}

func onCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return err == nil
}

// Int64 encodes v as 8 little-endian bytes, the way timestamps enter seeds.
func Int64(v int64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return b[:]
}

// Uint64 encodes v as 8 little-endian bytes.
func Uint64(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}
