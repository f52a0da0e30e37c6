package service

import "errors"

// ErrDecode marks a message payload that is not a valid order document.
// Redelivering it cannot help.
var ErrDecode = errors.New("decode")
