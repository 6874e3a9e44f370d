// Package auth contains the caller identity set of a request.
package auth

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/btcsuite/btcutil/base58"

	"github.com/chumchon-net/chumchon/internal/address"
)

// Request headers of a signed request. Every signature covers the same message, see Message.
const (
	SignatureHeader = "X-Signature"
	NonceHeader     = "X-Nonce"
	TimestampHeader = "X-Timestamp"
)

// MaxNonceLen is the longest accepted nonce.
const MaxNonceLen = 64

// ErrInvalidSignature is returned when a signature header is malformed or does not verify.
var ErrInvalidSignature = errors.New("invalid signature")

type contextKey struct{}

// Signers is the set of identities that authorized a request.
type Signers struct {
	set   map[address.Address]struct{}
	nonce string
}

// NewSigners creates a signer set.
func NewSigners(ids ...address.Address) Signers {
	s := Signers{set: make(map[address.Address]struct{}, len(ids))}
	for _, v := range ids {
		s.set[v] = struct{}{}
	}
	return s
}

// Contains returns true if id authorized the request.
func (s Signers) Contains(id address.Address) bool {
	_, ok := s.set[id]
	return ok
}

// Len returns number of signers.
func (s Signers) Len() int {
	return len(s.set)
}

// List returns signers ordered by address.
func (s Signers) List() []address.Address {
	out := make([]address.Address, 0, len(s.set))
	for k := range s.set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(string(out[i][:]), string(out[j][:])) < 0
	})
	return out
}

// WithNonce returns a copy of s bound to the nonce of the signed request.
// A nonce is accepted once per signer.
func (s Signers) WithNonce(nonce string) Signers {
	s.nonce = nonce
	return s
}

// Nonce returns the nonce the signatures were made over.
func (s Signers) Nonce() string {
	return s.nonce
}

// WithSigners puts signers into ctx.
func WithSigners(ctx context.Context, s Signers) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// SignersFromContext returns signers put into ctx, an empty set if there are none.
func SignersFromContext(ctx context.Context) Signers {
	s, ok := ctx.Value(contextKey{}).(Signers)
	if !ok {
		return NewSigners()
	}
	return s
}

// Message is what a signature covers: method, path, timestamp, nonce and body, newline separated.
func Message(method, path string, timestamp int64, nonce string, body []byte) []byte {
	head := strings.Join([]string{method, path, strconv.FormatInt(timestamp, 10), nonce}, "\n")

	msg := make([]byte, 0, len(head)+1+len(body))
	msg = append(msg, head...)
	msg = append(msg, '\n')
	return append(msg, body...)
}

// Sign builds a signature header value for msg.
func Sign(key ed25519.PrivateKey, msg []byte) string {
	pub := key.Public().(ed25519.PublicKey)
	return fmt.Sprintf("%s:%s", base58.Encode(pub), base58.Encode(ed25519.Sign(key, msg)))
}

// Verify checks a signature header value against msg and returns the signing identity.
func Verify(header string, msg []byte) (address.Address, error) {
	parts := strings.SplitN(header, ":", 2)
	if len(parts) != 2 {
		return address.Zero, fmt.Errorf("%w: expected <pubkey>:<signature>", ErrInvalidSignature)
	}

	id, err := address.Parse(parts[0])
	if err != nil {
		return address.Zero, fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	sig := base58.Decode(parts[1])
	if len(sig) != ed25519.SignatureSize {
		return address.Zero, fmt.Errorf("%w: bad signature length", ErrInvalidSignature)
	}

	if !ed25519.Verify(ed25519.PublicKey(id[:]), msg, sig) {
		return address.Zero, ErrInvalidSignature
	}

	return id, nil
}
