package services

import (
	"errors"
	"fmt"
)

// Error kinds returned by PointService. Match with errors.Is; use errors.As on
// the typed errors below for the numbers.
var (
	ErrInvalidAmount       = errors.New("invalid point amount")
	ErrInsufficientBalance = errors.New("insufficient points")
	ErrPointsOverflow      = errors.New("point balance overflow")
)

type InvalidAmountError struct {
	Amount int64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid point amount: %d, amount must be positive", e.Amount)
}

func (e *InvalidAmountError) Unwrap() error { return ErrInvalidAmount }

type InsufficientBalanceError struct {
	Required int64
	Current  int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient points: required %d, current %d", e.Required, e.Current)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }
