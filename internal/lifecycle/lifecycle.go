// Package lifecycle contains the state machines of stateful records.
//
// Functions here never touch the store: they validate input against current
// record contents and a supplied current time, then mutate the record in place.
// A function that returns an error leaves its arguments unchanged.
package lifecycle
