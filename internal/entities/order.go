package entities

import (
	"fmt"
	"strings"
	"time"
)

type Order struct {
	ID                  int64
	DinnerName          string
	DinnerNameEn        string
	ServingStyle        ServingStyleType
	DeliveryTime        time.Time
	DeliveryAddress     string
	TotalPrice          int64
	Status              OrderStatusType
	AdminApprovalStatus ApprovalStatusType
	PaymentStatus       string
	CreatedAt           time.Time
	Items               []OrderItem
}

type OrderItem struct {
	ID         int64
	MenuItemID int64
	Name       string
	NameEn     string
	Price      int64
	Quantity   int
}

// OrderStatusType статус исполнения заказа (кухня и доставка)
type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderCooking        OrderStatusType = "cooking"
	OrderReady          OrderStatusType = "ready"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) Label() string {
	switch s {
	case OrderPending:
		return "주문 접수"
	case OrderCooking:
		return "조리 중"
	case OrderReady:
		return "준비 완료"
	case OrderOutForDelivery:
		return "배달 중"
	case OrderDelivered:
		return "배달 완료"
	case OrderCancelled:
		return "취소됨"
	}
	return string(s)
}

// IsTerminal доставленный или отменённый заказ больше не меняется
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// PreparationStarted кухня уже списала продукты под заказ
func (s OrderStatusType) PreparationStarted() bool {
	switch s {
	case OrderCooking, OrderReady, OrderOutForDelivery:
		return true
	case OrderPending, OrderDelivered, OrderCancelled:
		return false
	}
	return false
}

func ParseOrderStatus(raw string) (OrderStatusType, error) {
	status := OrderStatusType(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case OrderPending, OrderCooking, OrderReady, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrderStatus, raw)
}

// ApprovalStatusType ось административного подтверждения, не зависит от OrderStatusType
type ApprovalStatusType string

const (
	ApprovalPending   ApprovalStatusType = "PENDING"
	ApprovalApproved  ApprovalStatusType = "APPROVED"
	ApprovalRejected  ApprovalStatusType = "REJECTED"
	ApprovalCancelled ApprovalStatusType = "CANCELLED"
)

func (s ApprovalStatusType) String() string {
	return string(s)
}

func (s ApprovalStatusType) Label() string {
	switch s {
	case ApprovalPending:
		return "관리자 승인 대기"
	case ApprovalApproved:
		return "관리자 승인 완료"
	case ApprovalRejected:
		return "관리자 반려"
	case ApprovalCancelled:
		return "고객 취소"
	}
	return string(s)
}

// ParseApprovalStatus пустое значение трактуется как PENDING
func ParseApprovalStatus(raw string) (ApprovalStatusType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return ApprovalPending, nil
	}

	status := ApprovalStatusType(normalized)
	switch status {
	case ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalCancelled:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownApprovalStatus, raw)
}

type ServingStyleType string

const (
	StyleSimple ServingStyleType = "simple"
	StyleGrand  ServingStyleType = "grand"
	StyleDeluxe ServingStyleType = "deluxe"
)

func (s ServingStyleType) String() string {
	return string(s)
}

func (s ServingStyleType) Label() string {
	switch s {
	case StyleSimple:
		return "심플"
	case StyleGrand:
		return "그랜드"
	case StyleDeluxe:
		return "디럭스"
	}
	return string(s)
}

func ParseServingStyle(raw string) (ServingStyleType, error) {
	style := ServingStyleType(strings.ToLower(strings.TrimSpace(raw)))
	switch style {
	case StyleSimple, StyleGrand, StyleDeluxe:
		return style, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownServingStyle, raw)
}
