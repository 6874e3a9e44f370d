package entities

import "github.com/near/borsh-go"

// Option is an optional field. It is persisted as a presence byte followed by
// the value when present.
//
// The zero value is absent.
type Option[T any] struct {
	Enum borsh.Enum `borsh_enum:"true"`
	None struct{}
	Some struct {
		Value T
	}
}

const (
	absent borsh.Enum = iota
	present
)

// Some returns a present option holding v.
func Some[T any](v T) Option[T] {
	var o Option[T]
	o.Enum = present
	o.Some.Value = v
	return o
}

// None returns an absent option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf converts a nil-able pointer into an option.
func OptionOf[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.Some.Value, o.Enum == present
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.Enum == present
}

// Ptr returns a pointer to a copy of the value, nil when absent.
func (o Option[T]) Ptr() *T {
	if o.Enum != present {
		return nil
	}
	v := o.Some.Value
	return &v
}
