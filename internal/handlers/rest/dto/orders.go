package dto

import (
	"time"

	"dinner-service/internal/entities"
	"dinner-service/internal/service/eligibility"
)

type OrderItem struct {
	ID         int64  `json:"id"`
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	NameEn     string `json:"name_en"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

type ModificationWindow struct {
	Allowed   bool   `json:"allowed"`
	FeeAmount int64  `json:"fee_amount"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
}

type CancellationQuote struct {
	DaysUntilDelivery  int    `json:"days_until_delivery"`
	Fee                int64  `json:"fee"`
	Refund             int64  `json:"refund"`
	PreparationStarted bool   `json:"preparation_started"`
	Refundable         bool   `json:"refundable"`
	Prompt             string `json:"prompt"`
}

type Order struct {
	ID                  int64              `json:"id"`
	DinnerName          string             `json:"dinner_name"`
	DinnerNameEn        string             `json:"dinner_name_en"`
	ServingStyle        string             `json:"serving_style"`
	ServingStyleLabel   string             `json:"serving_style_label"`
	DeliveryTime        string             `json:"delivery_time"`
	DeliveryAddress     string             `json:"delivery_address"`
	TotalPrice          int64              `json:"total_price"`
	Status              string             `json:"status"`
	StatusLabel         string             `json:"status_label"`
	AdminApprovalStatus string             `json:"admin_approval_status"`
	AdminApprovalLabel  string             `json:"admin_approval_label"`
	PaymentStatus       string             `json:"payment_status"`
	CreatedAt           string             `json:"created_at"`
	Items               []OrderItem        `json:"items"`
	CanModify           bool               `json:"can_modify"`
	CanCancel           bool               `json:"can_cancel"`
	ModificationWindow  ModificationWindow `json:"modification_window"`
	Cancellation        CancellationQuote  `json:"cancellation"`
}

type OrdersResponse struct {
	Orders               []Order `json:"orders"`
	PendingApprovalCount int     `json:"pending_approval_count"`
}

type ModificationResponse struct {
	OrderID            int64              `json:"order_id"`
	CanModify          bool               `json:"can_modify"`
	ModificationWindow ModificationWindow `json:"modification_window"`
	Prompt             string             `json:"prompt"`
}

type CancelResponse struct {
	OrderID      int64             `json:"order_id"`
	Status       string            `json:"status"`
	Cancellation CancellationQuote `json:"cancellation"`
}

type ChangeRequestItem struct {
	MenuItemID int64 `json:"menu_item_id" validate:"gt=0"`
	Quantity   int   `json:"quantity" validate:"gte=0"`
}

type ChangeRequestCreate struct {
	Items  []ChangeRequestItem `json:"items" validate:"required,min=1,dive"`
	Reason *string             `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type ChangeRequest struct {
	ID                        int64   `json:"id"`
	OrderID                   int64   `json:"order_id"`
	Status                    string  `json:"status"`
	StatusLabel               string  `json:"status_label"`
	OriginalTotalAmount       int64   `json:"original_total_amount"`
	NewTotalAmount            int64   `json:"new_total_amount"`
	ChangeFeeAmount           int64   `json:"change_fee_amount"`
	ExtraChargeAmount         int64   `json:"extra_charge_amount"`
	ExpectedRefundAmount      int64   `json:"expected_refund_amount"`
	RequiresAdditionalPayment bool    `json:"requires_additional_payment"`
	RequiresRefund            bool    `json:"requires_refund"`
	RequestedAt               string  `json:"requested_at"`
	ApprovedAt                *string `json:"approved_at,omitempty"`
	RejectedAt                *string `json:"rejected_at,omitempty"`
	Reason                    *string `json:"reason,omitempty"`
	AdminComment              *string `json:"admin_comment,omitempty"`
}

type ChangeRequestCreated struct {
	ChangeRequest ChangeRequest `json:"change_request"`
	AdvisoryFee   int64         `json:"advisory_fee"`
	Prompt        string        `json:"prompt"`
}

func FromOrderView(view entities.OrderView) Order {
	order := view.Order

	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			NameEn:     item.NameEn,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return Order{
		ID:                  order.ID,
		DinnerName:          order.DinnerName,
		DinnerNameEn:        order.DinnerNameEn,
		ServingStyle:        order.ServingStyle.String(),
		ServingStyleLabel:   order.ServingStyle.Label(),
		DeliveryTime:        formatTime(order.DeliveryTime),
		DeliveryAddress:     order.DeliveryAddress,
		TotalPrice:          order.TotalPrice,
		Status:              order.Status.String(),
		StatusLabel:         order.Status.Label(),
		AdminApprovalStatus: order.AdminApprovalStatus.String(),
		AdminApprovalLabel:  order.AdminApprovalStatus.Label(),
		PaymentStatus:       order.PaymentStatus,
		CreatedAt:           formatTime(order.CreatedAt),
		Items:               items,
		CanModify:           view.Eligibility.CanModify,
		CanCancel:           view.Eligibility.CanCancel,
		ModificationWindow:  FromModificationWindow(view.Eligibility.Window),
		Cancellation:        FromCancellationQuote(view.Eligibility.Cancellation),
	}
}

func FromOrderList(list entities.OrderList) OrdersResponse {
	orders := make([]Order, 0, len(list.Orders))
	for _, view := range list.Orders {
		orders = append(orders, FromOrderView(view))
	}
	return OrdersResponse{Orders: orders, PendingApprovalCount: list.PendingApprovalCount}
}

func FromModificationWindow(window entities.ModificationWindow) ModificationWindow {
	return ModificationWindow{
		Allowed:   window.Allowed,
		FeeAmount: window.FeeAmount,
		Reason:    window.Reason.String(),
		Message:   window.Message,
	}
}

func FromCancellationQuote(quote entities.CancellationQuote) CancellationQuote {
	return CancellationQuote{
		DaysUntilDelivery:  quote.DaysUntilDelivery,
		Fee:                quote.Fee,
		Refund:             quote.Refund,
		PreparationStarted: quote.PreparationStarted,
		Refundable:         quote.Refundable,
		Prompt:             eligibility.CancelPrompt(quote),
	}
}

func FromModificationCheck(check entities.ModificationCheck) ModificationResponse {
	return ModificationResponse{
		OrderID:            check.OrderID,
		CanModify:          check.CanModify,
		ModificationWindow: FromModificationWindow(check.Window),
		Prompt:             check.Prompt,
	}
}

func FromChangeRequest(request entities.ChangeRequest) ChangeRequest {
	return ChangeRequest{
		ID:                        request.ID,
		OrderID:                   request.OrderID,
		Status:                    request.Status.String(),
		StatusLabel:               request.Status.Label(),
		OriginalTotalAmount:       request.OriginalTotalAmount,
		NewTotalAmount:            request.NewTotalAmount,
		ChangeFeeAmount:           request.ChangeFeeAmount,
		ExtraChargeAmount:         request.ExtraChargeAmount,
		ExpectedRefundAmount:      request.ExpectedRefundAmount,
		RequiresAdditionalPayment: request.RequiresAdditionalPayment,
		RequiresRefund:            request.RequiresRefund,
		RequestedAt:               formatTime(request.RequestedAt),
		ApprovedAt:                formatTimePtr(request.ApprovedAt),
		RejectedAt:                formatTimePtr(request.RejectedAt),
		Reason:                    request.Reason,
		AdminComment:              request.AdminComment,
	}
}

func FromChangeRequests(requests []entities.ChangeRequest) []ChangeRequest {
	result := make([]ChangeRequest, 0, len(requests))
	for _, request := range requests {
		result = append(result, FromChangeRequest(request))
	}
	return result
}

func (c ChangeRequestCreate) ToDomain(orderID int64) entities.ChangeRequestModify {
	items := make([]entities.ChangeRequestItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, entities.ChangeRequestItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}
	return entities.ChangeRequestModify{OrderID: orderID, Items: items, Reason: c.Reason}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := formatTime(*t)
	return &formatted
}
