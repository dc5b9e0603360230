package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitProofOutput reports an accepted payment proof.
type SubmitProofOutput struct {
	Message string
	FileURL string
	Order   *entity.Order
}

// PaymentUsecase defines payment proof intake.
type PaymentUsecase interface {
	// SubmitProof stores the proof, moves the order to PROCESSING and queues its invoice.
	SubmitProof(ctx context.Context, actor Actor, orderID uuid.UUID, file FileUpload) (*SubmitProofOutput, error)

	// PaymentQR renders the QRIS code of an order awaiting payment.
	PaymentQR(ctx context.Context, actor Actor, orderID uuid.UUID) ([]byte, error)
}
