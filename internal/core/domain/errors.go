package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")

	ErrSubmissionNotFound = errors.New("submission not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidTransition  = errors.New("invalid slaughter status transition")
	ErrInvalidEntryStatus = errors.New("invalid entry status")

	// Conditional-field invariants: each optional field is populated if and
	// only if its governing boolean is set.
	ErrWishesRequireIntent  = errors.New("sacrifice_wishes requires wants_from_sacrifice")
	ErrPaymentFieldsPairing = errors.New("receipt_book_number and voucher_number require payment_confirmed")
	ErrIntermediaryPairing  = errors.New("intermediary_name requires through_intermediary")
)
