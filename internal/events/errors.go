package events

import "errors"

// ErrNoHandlers is returned when an event is emitted before any handler registered.
var ErrNoHandlers = errors.New("no event handlers registered")
