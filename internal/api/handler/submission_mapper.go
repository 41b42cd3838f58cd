package handler

import (
	"github.com/sanabel-org/adahi-api/internal/core/domain"
	"github.com/sanabel-org/adahi-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSubmissionRequest) ports.CreateSubmissionInput {
	return ports.CreateSubmissionInput{
		DonorName:              req.DonorName,
		SacrificeFor:           req.SacrificeFor,
		Phone:                  req.Phone,
		WantsToAttend:          req.WantsToAttend,
		WantsFromSacrifice:     req.WantsFromSacrifice,
		SacrificeWishes:        req.SacrificeWishes,
		PaymentConfirmed:       req.PaymentConfirmed,
		ReceiptBookNumber:      req.ReceiptBookNumber,
		VoucherNumber:          req.VoucherNumber,
		ThroughIntermediary:    req.ThroughIntermediary,
		IntermediaryName:       req.IntermediaryName,
		DistributionPreference: req.DistributionPreference,
	}
}

func toUpdateInput(req updateSubmissionRequest) ports.UpdateSubmissionInput {
	return ports.UpdateSubmissionInput{
		DonorName:              req.DonorName,
		SacrificeFor:           req.SacrificeFor,
		Phone:                  req.Phone,
		WantsToAttend:          req.WantsToAttend,
		WantsFromSacrifice:     req.WantsFromSacrifice,
		SacrificeWishes:        req.SacrificeWishes,
		PaymentConfirmed:       req.PaymentConfirmed,
		ReceiptBookNumber:      req.ReceiptBookNumber,
		VoucherNumber:          req.VoucherNumber,
		ThroughIntermediary:    req.ThroughIntermediary,
		IntermediaryName:       req.IntermediaryName,
		DistributionPreference: req.DistributionPreference,
	}
}

// --- Domain → HTTP response ---

func toSubmissionResponse(s *domain.AdahiSubmission) submissionResponse {
	return submissionResponse{
		ID:                     s.ID,
		UserID:                 s.UserID,
		UserEmail:              s.UserEmail,
		DonorName:              s.DonorName,
		SacrificeFor:           s.SacrificeFor,
		Phone:                  s.Phone,
		WantsToAttend:          s.WantsToAttend,
		WantsFromSacrifice:     s.WantsFromSacrifice,
		SacrificeWishes:        s.SacrificeWishes,
		PaymentConfirmed:       s.PaymentConfirmed,
		ReceiptBookNumber:      s.ReceiptBookNumber,
		VoucherNumber:          s.VoucherNumber,
		ThroughIntermediary:    s.ThroughIntermediary,
		IntermediaryName:       s.IntermediaryName,
		DistributionPreference: string(s.DistributionPreference),
		SubmissionDate:         s.SubmissionDate.UTC(),
		Status:                 string(s.Status),
		SlaughterStatus:        string(s.SlaughterStatus),
		SlaughterDate:          s.SlaughterDate,
	}
}

func toListResponse(items []domain.AdahiSubmission) listSubmissionsResponse {
	data := make([]submissionResponse, len(items))
	for i := range items {
		data[i] = toSubmissionResponse(&items[i])
	}
	return listSubmissionsResponse{Data: data, Total: len(data)}
}
