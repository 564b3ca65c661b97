package events

import "errors"

var (
	ErrInvalidMessage = errors.New("invalid activity message")
)
