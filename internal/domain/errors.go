package domain

import "errors"

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrQuoteNotFound = errors.New("quote not found")
)
