// Package lock serializes booking creation per appointment slot.
package lock

import (
	"context"
	"errors"
	"time"
)

// ErrBusy is returned when the slot lock could not be taken in time.
var ErrBusy = errors.New("slot lock busy")

const (
	DefaultTTL  = 5 * time.Second
	DefaultWait = 3 * time.Second
)

// SlotLocker grants exclusive access to a key. The returned release func
// must be called once the critical section ends.
type SlotLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

func SlotKey(date, hm string) string {
	return "booking:slot:" + date + ":" + hm
}
