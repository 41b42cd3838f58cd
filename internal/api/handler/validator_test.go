package handler

import "testing"

func validCreateRequest() createSubmissionRequest {
	return createSubmissionRequest{
		DonorName:              "Ahmad",
		SacrificeFor:           "family",
		Phone:                  "0781234567",
		DistributionPreference: "ramtha",
	}
}

func TestValidator_PhoneNumbers(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		phone string
		ok    bool
	}{
		{"0771234567", true},
		{"0781234567", true},
		{"0791234567", true},
		{"0761234567", false}, // 076 is not a valid prefix
		{"07712345", false},   // too short
		{"07712345678", false},
		{"0871234567", false},
		{"771234567", false},
		{"", false},
	}

	for _, tc := range cases {
		req := validCreateRequest()
		req.Phone = tc.phone
		err := v.Validate(&req)
		if tc.ok && err != nil {
			t.Errorf("phone %q: expected valid, got %v", tc.phone, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("phone %q: expected rejection", tc.phone)
		}
	}
}

func TestValidator_DistributionPreference(t *testing.T) {
	v := NewValidator()

	for _, pref := range []string{"ramtha", "gaza", "donor", "fund"} {
		req := validCreateRequest()
		req.DistributionPreference = pref
		if err := v.Validate(&req); err != nil {
			t.Errorf("preference %q: expected valid, got %v", pref, err)
		}
	}

	for _, pref := range []string{"", "charity", "RAMTHA", "local"} {
		req := validCreateRequest()
		req.DistributionPreference = pref
		if err := v.Validate(&req); err == nil {
			t.Errorf("preference %q: expected rejection", pref)
		}
	}
}

func TestValidator_ConditionalPairs(t *testing.T) {
	v := NewValidator()

	// wish text required when the intent flag is set
	req := validCreateRequest()
	req.WantsFromSacrifice = true
	if err := v.Validate(&req); err == nil {
		t.Errorf("expected rejection: wants_from_sacrifice without wishes")
	}
	req.SacrificeWishes = "liver"
	if err := v.Validate(&req); err != nil {
		t.Errorf("expected valid with wishes, got %v", err)
	}

	// and forbidden when it is not
	req = validCreateRequest()
	req.SacrificeWishes = "liver"
	if err := v.Validate(&req); err == nil {
		t.Errorf("expected rejection: wishes without intent flag")
	}

	// payment numbers pair with the confirmation flag
	req = validCreateRequest()
	req.PaymentConfirmed = true
	if err := v.Validate(&req); err == nil {
		t.Errorf("expected rejection: payment confirmed without numbers")
	}
	req.ReceiptBookNumber = "RB-12"
	if err := v.Validate(&req); err == nil {
		t.Errorf("expected rejection: missing voucher number")
	}
	req.VoucherNumber = "V-7"
	if err := v.Validate(&req); err != nil {
		t.Errorf("expected valid with both numbers, got %v", err)
	}

	req = validCreateRequest()
	req.ReceiptBookNumber = "RB-12"
	if err := v.Validate(&req); err == nil {
		t.Errorf("expected rejection: receipt number without payment flag")
	}

	// intermediary name pairs with the intermediary flag
	req = validCreateRequest()
	req.ThroughIntermediary = true
	if err := v.Validate(&req); err == nil {
		t.Errorf("expected rejection: intermediary without name")
	}
	req.IntermediaryName = "Abu Khalil"
	if err := v.Validate(&req); err != nil {
		t.Errorf("expected valid with intermediary name, got %v", err)
	}

	req = validCreateRequest()
	req.IntermediaryName = "Abu Khalil"
	if err := v.Validate(&req); err == nil {
		t.Errorf("expected rejection: intermediary name without flag")
	}
}

func TestValidator_RequiredFields(t *testing.T) {
	v := NewValidator()

	req := validCreateRequest()
	req.DonorName = ""
	if err := v.Validate(&req); err == nil {
		t.Errorf("expected rejection: missing donor name")
	}

	req = validCreateRequest()
	req.SacrificeFor = ""
	if err := v.Validate(&req); err == nil {
		t.Errorf("expected rejection: missing sacrifice_for")
	}
}

func TestValidator_UpdatePatch(t *testing.T) {
	v := NewValidator()

	// empty patch is fine, all fields optional
	if err := v.Validate(&updateSubmissionRequest{}); err != nil {
		t.Errorf("empty patch should validate, got %v", err)
	}

	bad := "0761234567"
	if err := v.Validate(&updateSubmissionRequest{Phone: &bad}); err == nil {
		t.Errorf("expected rejection: invalid phone in patch")
	}

	pref := "charity"
	if err := v.Validate(&updateSubmissionRequest{DistributionPreference: &pref}); err == nil {
		t.Errorf("expected rejection: invalid preference in patch")
	}
}
