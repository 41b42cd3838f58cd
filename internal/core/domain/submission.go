package domain

import "time"

// EntryStatus records whether staff have confirmed a submission was entered
// into the physical ledger.
type EntryStatus string

const (
	EntryPending EntryStatus = "pending"
	EntryEntered EntryStatus = "entered"
)

// Valid reports whether s is one of the two recognised entry statuses.
func (s EntryStatus) Valid() bool {
	return s == EntryPending || s == EntryEntered
}

// SlaughterStatus represents the workflow stage of the physical slaughter and
// donor-notification process. It is distinct from the entry status.
type SlaughterStatus string

const (
	SlaughterPending   SlaughterStatus = "pending"
	SlaughterMarked    SlaughterStatus = "marked_slaughtered"
	SlaughterConfirmed SlaughterStatus = "confirmed_slaughtered"
	SlaughterNotified  SlaughterStatus = "notified"
)

// slaughterTransitions defines the allowed workflow transitions. Marked and
// confirmed stages keep an undo edge back to pending; notified is terminal.
var slaughterTransitions = map[SlaughterStatus][]SlaughterStatus{
	SlaughterPending:   {SlaughterMarked},
	SlaughterMarked:    {SlaughterConfirmed, SlaughterPending},
	SlaughterConfirmed: {SlaughterNotified, SlaughterPending},
}

// CanTransitionTo reports whether a transition from the current stage to next is valid.
func (s SlaughterStatus) CanTransitionTo(next SlaughterStatus) bool {
	for _, allowed := range slaughterTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DistributionPreference is the destination category for the sacrificed
// animal's meat.
type DistributionPreference string

const (
	DistributeRamtha DistributionPreference = "ramtha"
	DistributeGaza   DistributionPreference = "gaza"
	DistributeDonor  DistributionPreference = "donor"
	DistributeFund   DistributionPreference = "fund"
)

// Valid reports whether p is one of the four fixed distribution values.
func (p DistributionPreference) Valid() bool {
	switch p {
	case DistributeRamtha, DistributeGaza, DistributeDonor, DistributeFund:
		return true
	}
	return false
}

// AdahiSubmission is the core aggregate: one recorded pledge of a sacrificial
// animal donation. UserID and UserEmail are stamped at creation and never
// reassigned.
type AdahiSubmission struct {
	ID                     string                 `json:"id" bson:"_id,omitempty"`
	UserID                 string                 `json:"user_id" bson:"user_id"`
	UserEmail              string                 `json:"user_email,omitempty" bson:"user_email,omitempty"`
	DonorName              string                 `json:"donor_name" bson:"donor_name"`
	SacrificeFor           string                 `json:"sacrifice_for" bson:"sacrifice_for"`
	Phone                  string                 `json:"phone" bson:"phone"`
	WantsToAttend          bool                   `json:"wants_to_attend" bson:"wants_to_attend"`
	WantsFromSacrifice     bool                   `json:"wants_from_sacrifice" bson:"wants_from_sacrifice"`
	SacrificeWishes        string                 `json:"sacrifice_wishes,omitempty" bson:"sacrifice_wishes,omitempty"`
	PaymentConfirmed       bool                   `json:"payment_confirmed" bson:"payment_confirmed"`
	ReceiptBookNumber      string                 `json:"receipt_book_number,omitempty" bson:"receipt_book_number,omitempty"`
	VoucherNumber          string                 `json:"voucher_number,omitempty" bson:"voucher_number,omitempty"`
	ThroughIntermediary    bool                   `json:"through_intermediary" bson:"through_intermediary"`
	IntermediaryName       string                 `json:"intermediary_name,omitempty" bson:"intermediary_name,omitempty"`
	DistributionPreference DistributionPreference `json:"distribution_preference" bson:"distribution_preference"`
	SubmissionDate         time.Time              `json:"submission_date" bson:"submission_date"`
	Status                 EntryStatus            `json:"status" bson:"status"`
	SlaughterStatus        SlaughterStatus        `json:"slaughter_status" bson:"slaughter_status"`
	SlaughterDate          *time.Time             `json:"slaughter_date,omitempty" bson:"slaughter_date,omitempty"`
}

// ValidateConditionals enforces the iff pairing between each governing
// boolean and its dependent fields. Request validation rejects violating
// input at the edge; this is the authoritative re-check before any write.
func (s *AdahiSubmission) ValidateConditionals() error {
	if s.WantsFromSacrifice != (s.SacrificeWishes != "") {
		return ErrWishesRequireIntent
	}
	if s.PaymentConfirmed != (s.ReceiptBookNumber != "" && s.VoucherNumber != "") {
		return ErrPaymentFieldsPairing
	}
	if !s.PaymentConfirmed && (s.ReceiptBookNumber != "" || s.VoucherNumber != "") {
		return ErrPaymentFieldsPairing
	}
	if s.ThroughIntermediary != (s.IntermediaryName != "") {
		return ErrIntermediaryPairing
	}
	return nil
}

// SlaughterEvent records a single slaughter-workflow transition for the audit
// trail.
type SlaughterEvent struct {
	SubmissionID string          `json:"submission_id"`
	From         SlaughterStatus `json:"from"`
	To           SlaughterStatus `json:"to"`
	ActorID      string          `json:"actor_id"`
	Timestamp    time.Time       `json:"timestamp"`
}
