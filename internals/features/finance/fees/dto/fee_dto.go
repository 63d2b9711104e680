package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/finance/fees/model"
)

const dateLayout = "2006-01-02"

// ================== REQUEST ==================
type CreateFeeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Title     string    `json:"title" validate:"required,min=2,max=150"`
	Amount    int64     `json:"amount" validate:"required,gt=0"`
	DueDate   string    `json:"due_date" validate:"required"`
}

type UpdateFeeRequest struct {
	Title   *string `json:"title"`
	Amount  *int64  `json:"amount" validate:"omitempty,gt=0"`
	DueDate *string `json:"due_date"`
}

type RecordPaymentRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// ================== RESPONSE ==================
type FeeResponse struct {
	FeeID       uuid.UUID `json:"fee_id"`
	StudentID   uuid.UUID `json:"student_id"`
	Title       string    `json:"title"`
	Amount      int64     `json:"amount"`
	PaidAmount  int64     `json:"paid_amount"`
	Outstanding int64     `json:"outstanding"`
	DueDate     string    `json:"due_date"`
	Status      string    `json:"status"`
	OrderID     *string   `json:"order_id,omitempty"`
}

type SnapTokenResponse struct {
	FeeID     uuid.UUID `json:"fee_id"`
	OrderID   string    `json:"order_id"`
	SnapToken string    `json:"snap_token"`
	Amount    int64     `json:"amount"`
}

// ================ CONVERSION =================
func (r *CreateFeeRequest) ParseDueDate() (time.Time, error) {
	return time.Parse(dateLayout, r.DueDate)
}

func (r *CreateFeeRequest) ToModel(dueDate time.Time) *model.FeeModel {
	return &model.FeeModel{
		FeeStudentID: r.StudentID,
		FeeTitle:     strings.TrimSpace(r.Title),
		FeeAmount:    r.Amount,
		FeeDueDate:   dueDate,
		FeeStatus:    model.FeeStatusUnpaid,
	}
}

func ToFeeResponse(m *model.FeeModel) *FeeResponse {
	return &FeeResponse{
		FeeID:       m.FeeID,
		StudentID:   m.FeeStudentID,
		Title:       m.FeeTitle,
		Amount:      m.FeeAmount,
		PaidAmount:  m.FeePaidAmount,
		Outstanding: m.Outstanding(),
		DueDate:     m.FeeDueDate.Format(dateLayout),
		Status:      m.FeeStatus,
		OrderID:     m.FeeOrderID,
	}
}

func ToFeeResponseList(models []model.FeeModel) []FeeResponse {
	result := make([]FeeResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToFeeResponse(&models[i]))
	}
	return result
}
