package invoice

import "errors"

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvalidOrderCode = errors.New("invalid order code")
)
