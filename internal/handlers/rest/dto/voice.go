package dto

import "dinner-service/internal/entities"

type VoiceOrderItem struct {
	Key      *string `json:"key"`
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
	Action   *string `json:"action"`
}

type VoiceStateRequest struct {
	DinnerType           *string          `json:"dinner_type"`
	ServingStyle         *string          `json:"serving_style"`
	MenuAdjustments      []VoiceOrderItem `json:"menu_adjustments" validate:"max=50"`
	DeliveryDate         *string          `json:"delivery_date"`
	DeliveryTime         *string          `json:"delivery_time"`
	DeliveryDateTime     *string          `json:"delivery_date_time"`
	DeliveryAddress      *string          `json:"delivery_address" validate:"omitempty,max=300"`
	ContactPhone         *string          `json:"contact_phone" validate:"omitempty,max=30"`
	ContactName          *string          `json:"contact_name" validate:"omitempty,max=100"`
	SpecialRequests      *string          `json:"special_requests" validate:"omitempty,max=1000"`
	ReadyForConfirmation *bool            `json:"ready_for_confirmation"`
	FinalConfirmation    *bool            `json:"final_confirmation"`
	NeedsMoreInfo        []string         `json:"needs_more_info"`
}

type VoiceConfirmRequest struct {
	Password string `json:"password" validate:"required"`
}

type VoiceSummaryItem struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type VoiceSummary struct {
	DinnerName           string             `json:"dinner_name"`
	ServingStyle         string             `json:"serving_style"`
	Items                []VoiceSummaryItem `json:"items"`
	DeliverySlot         string             `json:"delivery_slot"`
	DeliveryAddress      string             `json:"delivery_address"`
	ContactPhone         string             `json:"contact_phone"`
	SpecialRequests      string             `json:"special_requests"`
	ReadyForConfirmation bool               `json:"ready_for_confirmation"`
	FinalConfirmation    *bool              `json:"final_confirmation"`
	MissingFields        []string           `json:"missing_fields"`
	OrderID              *int64             `json:"order_id,omitempty"`
	TotalPrice           *int64             `json:"total_price,omitempty"`
}

type VoiceStartResponse struct {
	SessionID     string       `json:"session_id"`
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	Summary       VoiceSummary `json:"summary"`
}

type VoiceConfirmResponse struct {
	SessionID              string       `json:"session_id"`
	OrderID                int64        `json:"order_id"`
	TotalPrice             int64        `json:"total_price"`
	Summary                VoiceSummary `json:"summary"`
	ConfirmationMessage    string       `json:"confirmation_message"`
	LoyaltyDiscountApplied bool         `json:"loyalty_discount_applied"`
	OriginalPrice          int64        `json:"original_price"`
	DiscountAmount         int64        `json:"discount_amount"`
	DiscountPercentage     int          `json:"discount_percentage"`
}

func (r VoiceStateRequest) ToDomain() entities.VoiceOrderState {
	adjustments := make([]entities.VoiceOrderItem, 0, len(r.MenuAdjustments))
	for _, item := range r.MenuAdjustments {
		adjustments = append(adjustments, entities.VoiceOrderItem{
			Key:      item.Key,
			Name:     item.Name,
			Quantity: item.Quantity,
			Action:   item.Action,
		})
	}

	return entities.VoiceOrderState{
		DinnerType:           r.DinnerType,
		ServingStyle:         r.ServingStyle,
		MenuAdjustments:      adjustments,
		DeliveryDate:         r.DeliveryDate,
		DeliveryTime:         r.DeliveryTime,
		DeliveryDateTime:     r.DeliveryDateTime,
		DeliveryAddress:      r.DeliveryAddress,
		ContactPhone:         r.ContactPhone,
		ContactName:          r.ContactName,
		SpecialRequests:      r.SpecialRequests,
		ReadyForConfirmation: r.ReadyForConfirmation,
		FinalConfirmation:    r.FinalConfirmation,
		NeedsMoreInfo:        r.NeedsMoreInfo,
	}
}

func FromVoiceSummary(summary entities.VoiceSummary) VoiceSummary {
	items := make([]VoiceSummaryItem, 0, len(summary.Items))
	for _, item := range summary.Items {
		items = append(items, VoiceSummaryItem{Key: item.Key, Name: item.Name, Quantity: item.Quantity})
	}

	missing := summary.MissingFields
	if missing == nil {
		missing = []string{}
	}

	return VoiceSummary{
		DinnerName:           summary.DinnerName,
		ServingStyle:         summary.ServingStyle,
		Items:                items,
		DeliverySlot:         summary.DeliverySlot,
		DeliveryAddress:      summary.DeliveryAddress,
		ContactPhone:         summary.ContactPhone,
		SpecialRequests:      summary.SpecialRequests,
		ReadyForConfirmation: summary.ReadyForConfirmation,
		FinalConfirmation:    summary.FinalConfirmation,
		MissingFields:        missing,
		OrderID:              summary.OrderID,
		TotalPrice:           summary.TotalPrice,
	}
}

func FromVoiceStart(session entities.VoiceSession, summary entities.VoiceSummary) VoiceStartResponse {
	return VoiceStartResponse{
		SessionID:     session.ID,
		CustomerName:  session.CustomerName,
		CustomerPhone: session.CustomerPhone,
		Summary:       FromVoiceSummary(summary),
	}
}

func FromVoiceConfirmation(confirmation entities.VoiceConfirmation) VoiceConfirmResponse {
	return VoiceConfirmResponse{
		SessionID:              confirmation.SessionID,
		OrderID:                confirmation.Order.OrderID,
		TotalPrice:             confirmation.Order.TotalPrice,
		Summary:                FromVoiceSummary(confirmation.Summary),
		ConfirmationMessage:    confirmation.ConfirmationMessage,
		LoyaltyDiscountApplied: confirmation.Order.LoyaltyDiscountApplied,
		OriginalPrice:          confirmation.Order.OriginalPrice,
		DiscountAmount:         confirmation.Order.DiscountAmount,
		DiscountPercentage:     confirmation.Order.DiscountPercentage,
	}
}
