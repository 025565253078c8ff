package notification

import "errors"

var (
	ErrDisabled        = errors.New("notifications disabled")
	ErrInvalidMessage  = errors.New("invalid notification message")
	ErrAlreadyNotified = errors.New("order already notified")
)
