package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrOutOfStock         = errors.New("out of stock")
	ErrOrderNotPayable    = errors.New("order not payable")
	ErrPaymentReviewed    = errors.New("payment already reviewed")
)
