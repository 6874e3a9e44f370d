// Package events contains notifications about committed transitions.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chumchon-net/chumchon/internal/address"
)

// Event describes one committed transition.
type Event struct {
	ID        uuid.UUID         `json:"id"`
	Op        string            `json:"op"`
	Addresses []address.Address `json:"addresses"`
	Time      time.Time         `json:"time"`
}

// New creates an event with a fresh id.
func New(op string, t time.Time, addrs ...address.Address) Event {
	return Event{
		ID:        uuid.New(),
		Op:        op,
		Addresses: addrs,
		Time:      t,
	}
}

// Emitter receives events of committed transitions.
// Emit is called after commit and must not block.
type Emitter interface {
	Emit(e Event)
}

// NoopEmitter discards events.
type NoopEmitter struct{}

// Emit ...
func (NoopEmitter) Emit(Event) {}

// LogEmitter writes events to log.
type LogEmitter struct {
	Log logrus.FieldLogger
}

// Emit ...
func (l LogEmitter) Emit(e Event) {
	addrs := make([]string, len(e.Addresses))
	for i, v := range e.Addresses {
		addrs[i] = v.String()
	}

	l.Log.WithFields(logrus.Fields{
		"event_id":  e.ID.String(),
		"op":        e.Op,
		"addresses": addrs,
		"time":      e.Time.Unix(),
	}).Info("transition committed")
}

// Multi fans events out to every emitter.
type Multi []Emitter

// Emit ...
func (m Multi) Emit(e Event) {
	for _, v := range m {
		v.Emit(e)
	}
}
