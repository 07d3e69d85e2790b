package domain

import "errors"

var (
	ErrClientNotFound        = errors.New("client not found")
	ErrContractNotFound      = errors.New("contract not found")
	ErrGuideNotFound         = errors.New("payment guide not found")
	ErrGuideAlreadyConfirmed = errors.New("payment guide already confirmed")
	ErrInvalidContractStatus = errors.New("invalid contract status")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrContractNotActive     = errors.New("contract is not active")
	ErrClientAlreadyExists   = errors.New("client with this CPF already exists")
)

// Input errors, reported back to the operator.
var (
	ErrInvalidCPF   = errors.New("invalid CPF")
	ErrInvalidInput = errors.New("invalid input")
)

// Persistence errors. Both are recoverable: the store starts empty.
var (
	ErrSlotEmpty       = errors.New("storage slot is empty")
	ErrSnapshotCorrupt = errors.New("stored snapshot is corrupt")
)
