package entities

import (
	"fmt"
	"strings"
	"time"
)

type ChangeRequest struct {
	ID                        int64
	OrderID                   int64
	Status                    ChangeRequestStatusType
	OriginalTotalAmount       int64
	NewTotalAmount            int64
	ChangeFeeAmount           int64
	ExtraChargeAmount         int64
	ExpectedRefundAmount      int64
	RequiresAdditionalPayment bool
	RequiresRefund            bool
	RequestedAt               time.Time
	ApprovedAt                *time.Time
	RejectedAt                *time.Time
	Reason                    *string
	AdminComment              *string
}

// ChangeRequestModify заявка клиента на изменение уже подтверждённого заказа
type ChangeRequestModify struct {
	OrderID int64
	Items   []ChangeRequestItem
	Reason  *string
}

type ChangeRequestItem struct {
	MenuItemID int64
	Quantity   int
}

type ChangeRequestStatusType string

const (
	ChangeRequested     ChangeRequestStatusType = "REQUESTED"
	ChangeApproved      ChangeRequestStatusType = "APPROVED"
	ChangeRejected      ChangeRequestStatusType = "REJECTED"
	ChangePaymentFailed ChangeRequestStatusType = "PAYMENT_FAILED"
	ChangeRefundFailed  ChangeRequestStatusType = "REFUND_FAILED"
)

func (s ChangeRequestStatusType) String() string {
	return string(s)
}

func (s ChangeRequestStatusType) Label() string {
	switch s {
	case ChangeRequested:
		return "승인 대기"
	case ChangeApproved:
		return "승인됨"
	case ChangeRejected:
		return "거절됨"
	case ChangePaymentFailed:
		return "결제 실패"
	case ChangeRefundFailed:
		return "환불 실패"
	}
	return string(s)
}

func ParseChangeRequestStatus(raw string) (ChangeRequestStatusType, error) {
	status := ChangeRequestStatusType(strings.ToUpper(strings.TrimSpace(raw)))
	switch status {
	case ChangeRequested, ChangeApproved, ChangeRejected, ChangePaymentFailed, ChangeRefundFailed:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChangeRequestStatus, raw)
}
