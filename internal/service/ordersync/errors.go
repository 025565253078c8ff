package ordersync

import "errors"

var (
	ErrAlreadySubscribed = errors.New("already subscribed to order changes")
	ErrRetired           = errors.New("order sync controller retired")
	ErrOrderNotFound     = errors.New("order not found")
)
