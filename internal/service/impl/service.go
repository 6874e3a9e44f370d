// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/assets"
	"github.com/chumchon-net/chumchon/internal/auth"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/events"
	"github.com/chumchon-net/chumchon/internal/guard"
	"github.com/chumchon-net/chumchon/internal/metrics"
	"github.com/chumchon-net/chumchon/internal/service"
	"github.com/chumchon-net/chumchon/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// Operation names.
const (
	OpCreateUserProfile   = "create_user_profile"
	OpUpdateUserProfile   = "update_user_profile"
	OpCompleteTutorial    = "complete_tutorial"
	OpSetProfileNFT       = "set_profile_nft"
	OpCreateGroup         = "create_group"
	OpJoinGroup           = "join_group"
	OpCreateInvite        = "create_invite"
	OpUseInvite           = "use_invite"
	OpSendMessage         = "send_message"
	OpTipMessage          = "tip_message"
	OpCreateEscrow        = "create_escrow"
	OpAcceptEscrow        = "accept_escrow"
	OpCompleteEscrow      = "complete_escrow"
	OpCreateMemeChallenge = "create_meme_challenge"
	OpSubmitMeme          = "submit_meme"
	OpVoteForMeme         = "vote_for_meme"
	OpEndMemeChallenge    = "end_meme_challenge"
)

type srv struct {
	s       storage.Storage
	d       address.Deriver
	ledger  assets.Ledger
	emitter events.Emitter
	metrics *metrics.Transitions
	now     func() time.Time
}

// Option configures service.
type Option func(s *srv)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *srv) {
		s.now = now
	}
}

// WithEmitter sets receiver of committed transition events.
func WithEmitter(e events.Emitter) Option {
	return func(s *srv) {
		s.emitter = e
	}
}

// WithMetrics sets transition collectors.
func WithMetrics(m *metrics.Transitions) Option {
	return func(s *srv) {
		s.metrics = m
	}
}

// WithLedger replaces the asset ledger.
func WithLedger(l assets.Ledger) Option {
	return func(s *srv) {
		s.ledger = l
	}
}

// New creates new instance of service.
func New(s storage.Storage, d address.Deriver, opts ...Option) service.Service {
	v := &srv{
		s:       s,
		d:       d,
		ledger:  assets.New(),
		emitter: events.NoopEmitter{},
		now:     time.Now,
	}

	for _, o := range opts {
		o(v)
	}

	return v
}

// transition is the body of one operation. It returns addresses of the records it wrote.
type transition func(tx storage.Storage, now int64) ([]address.Address, error)

// run executes f in a single transaction. Events are emitted only after commit.
func (s *srv) run(ctx context.Context, op string, f transition) ([]address.Address, error) {
	started := time.Now()
	now := s.now()

	var touched []address.Address
	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := s.consumeNonce(ctx, tx, now.Unix()); err != nil {
			return err
		}

		var err error
		touched, err = f(tx, now.Unix())
		return err
	})
	err = translate(err)

	l := log.WithField("op", op)
	result := metrics.ResultOK

	if err != nil {
		if e, ok := errs.As(err); ok {
			result = e.Code
			l.WithError(err).WithField("code", e.Code).Debug("transition rejected")
		} else {
			result = metrics.ResultError
			l.WithError(err).Error("transition failed")
		}
	} else {
		l.WithField("addresses", len(touched)).Debug("transition committed")
		s.emitter.Emit(events.New(op, now, touched...))
	}

	s.metrics.Observe(op, result, time.Since(started))

	return touched, err
}

// runCreate is run for transitions whose first written address is the result.
func (s *srv) runCreate(ctx context.Context, op string, f transition) (address.Address, error) {
	touched, err := s.run(ctx, op, f)
	if err != nil {
		return address.Zero, err
	}
	return touched[0], nil
}

// translate maps store failures to typed failure reasons.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errs.As(err); ok {
		return err
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %w", errs.ErrNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", errs.ErrAlreadyExists, err)
	case errors.Is(err, address.ErrNoViableBump):
		return fmt.Errorf("%w: %w", errs.ErrAddressMismatch, err)
	}

	return err
}

// consumeNonce records the request nonce for every signer, so a signed
// request is applied at most once. It is rolled back with the transition.
func (s *srv) consumeNonce(ctx context.Context, tx storage.Storage, now int64) error {
	signers := auth.SignersFromContext(ctx)
	if signers.Len() == 0 {
		return nil
	}

	nonce := signers.Nonce()
	if nonce == "" {
		return fmt.Errorf("%w: missing nonce", errs.ErrUnauthorized)
	}

	for _, id := range signers.List() {
		_, err := s.create(ctx, tx, &entities.NonceRecord{Signer: id, Nonce: nonce, UsedAt: now})
		if errors.Is(err, storage.ErrAlreadyExists) {
			return fmt.Errorf("%w: nonce %q of %s", errs.ErrReplayedRequest, nonce, id)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func signer(ctx context.Context, id address.Address) error {
	return guard.IsSigner(auth.SignersFromContext(ctx), id)
}

// create derives the address of rec, stores its bump and inserts it.
func (s *srv) create(ctx context.Context, tx storage.Storage, rec entities.Derived) (address.Address, error) {
	addr, bump, err := s.d.DeriveSeeds(rec.Seeds())
	if err != nil {
		return address.Zero, fmt.Errorf("failed to derive %s address: %w", rec.Kind(), err)
	}
	rec.SetBump(bump)

	if err := storage.Insert(ctx, tx, addr, rec); err != nil {
		return address.Zero, fmt.Errorf("failed to create %s: %w", rec.Kind(), err)
	}

	return addr, nil
}

func (s *srv) save(ctx context.Context, tx storage.Storage, addr address.Address, rec entities.Record) error {
	if err := storage.Save(ctx, tx, addr, rec); err != nil {
		return fmt.Errorf("failed to save %s: %w", rec.Kind(), err)
	}
	return nil
}

func (s *srv) address(seeds address.Seeds) (address.Address, error) {
	addr, _, err := s.d.DeriveSeeds(seeds)
	if err != nil {
		return address.Zero, fmt.Errorf("failed to derive address: %w", err)
	}
	return addr, nil
}
