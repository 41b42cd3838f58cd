package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createSubmissionRequest carries donor-supplied submission data. The
// conditional fields pair with their governing booleans: required when the
// flag is set, forbidden when it is not.
type createSubmissionRequest struct {
	DonorName              string `json:"donor_name"              validate:"required"`
	SacrificeFor           string `json:"sacrifice_for"           validate:"required"`
	Phone                  string `json:"phone"                   validate:"required,jo_mobile"`
	WantsToAttend          bool   `json:"wants_to_attend"`
	WantsFromSacrifice     bool   `json:"wants_from_sacrifice"`
	SacrificeWishes        string `json:"sacrifice_wishes"        validate:"required_if=WantsFromSacrifice true,excluded_if=WantsFromSacrifice false"`
	PaymentConfirmed       bool   `json:"payment_confirmed"`
	ReceiptBookNumber      string `json:"receipt_book_number"     validate:"required_if=PaymentConfirmed true,excluded_if=PaymentConfirmed false"`
	VoucherNumber          string `json:"voucher_number"          validate:"required_if=PaymentConfirmed true,excluded_if=PaymentConfirmed false"`
	ThroughIntermediary    bool   `json:"through_intermediary"`
	IntermediaryName       string `json:"intermediary_name"       validate:"required_if=ThroughIntermediary true,excluded_if=ThroughIntermediary false"`
	DistributionPreference string `json:"distribution_preference" validate:"required,oneof=ramtha gaza donor fund"`
}

// updateSubmissionRequest is the admin patch. All fields are optional; the
// identifier, owner id, and owner email are not accepted at all, since they
// are immutable after creation. Cross-field conditional invariants are enforced
// by the service on the merged record.
type updateSubmissionRequest struct {
	DonorName              *string `json:"donor_name"              validate:"omitempty,min=1"`
	SacrificeFor           *string `json:"sacrifice_for"           validate:"omitempty,min=1"`
	Phone                  *string `json:"phone"                   validate:"omitempty,jo_mobile"`
	WantsToAttend          *bool   `json:"wants_to_attend"`
	WantsFromSacrifice     *bool   `json:"wants_from_sacrifice"`
	SacrificeWishes        *string `json:"sacrifice_wishes"`
	PaymentConfirmed       *bool   `json:"payment_confirmed"`
	ReceiptBookNumber      *string `json:"receipt_book_number"`
	VoucherNumber          *string `json:"voucher_number"`
	ThroughIntermediary    *bool   `json:"through_intermediary"`
	IntermediaryName       *string `json:"intermediary_name"`
	DistributionPreference *string `json:"distribution_preference" validate:"omitempty,oneof=ramtha gaza donor fund"`
}

type entryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending entered"`
}

type slaughterTransitionRequest struct {
	To string `json:"to" validate:"required,oneof=pending marked_slaughtered confirmed_slaughtered notified"`
}

// submissionResponse is the transport view of a submission. Kept separate
// from the domain type so the JSON contract is not coupled to internal
// changes.
type submissionResponse struct {
	ID                     string     `json:"id"`
	UserID                 string     `json:"user_id"`
	UserEmail              string     `json:"user_email,omitempty"`
	DonorName              string     `json:"donor_name"`
	SacrificeFor           string     `json:"sacrifice_for"`
	Phone                  string     `json:"phone"`
	WantsToAttend          bool       `json:"wants_to_attend"`
	WantsFromSacrifice     bool       `json:"wants_from_sacrifice"`
	SacrificeWishes        string     `json:"sacrifice_wishes,omitempty"`
	PaymentConfirmed       bool       `json:"payment_confirmed"`
	ReceiptBookNumber      string     `json:"receipt_book_number,omitempty"`
	VoucherNumber          string     `json:"voucher_number,omitempty"`
	ThroughIntermediary    bool       `json:"through_intermediary"`
	IntermediaryName       string     `json:"intermediary_name,omitempty"`
	DistributionPreference string     `json:"distribution_preference"`
	SubmissionDate         time.Time  `json:"submission_date"`
	Status                 string     `json:"status"`
	SlaughterStatus        string     `json:"slaughter_status"`
	SlaughterDate          *time.Time `json:"slaughter_date,omitempty"`
}

type listSubmissionsResponse struct {
	Data  []submissionResponse `json:"data"`
	Total int                  `json:"total"`
}
