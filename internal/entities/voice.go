package entities

import "time"

// VoiceOrderState накопленное состояние диалога, nil поле = ассистент ещё не заполнил
type VoiceOrderState struct {
	DinnerType           *string
	ServingStyle         *string
	MenuAdjustments      []VoiceOrderItem
	DeliveryDate         *string
	DeliveryTime         *string
	DeliveryDateTime     *string
	DeliveryAddress      *string
	ContactPhone         *string
	ContactName          *string
	SpecialRequests      *string
	ReadyForConfirmation *bool
	FinalConfirmation    *bool
	NeedsMoreInfo        []string
}

type VoiceOrderItem struct {
	Key      *string
	Name     *string
	Quantity *int
	Action   *string
}

type VoiceSession struct {
	ID            string
	UserID        int64
	CustomerName  string
	CustomerPhone string
	State         VoiceOrderState
	OrderPlaced   bool
	OrderID       *int64
	TotalPrice    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type VoiceSummary struct {
	DinnerName           string
	ServingStyle         string
	Items                []VoiceSummaryItem
	DeliverySlot         string
	DeliveryAddress      string
	ContactPhone         string
	SpecialRequests      string
	ReadyForConfirmation bool
	FinalConfirmation    *bool
	MissingFields        []string
	OrderID              *int64
	TotalPrice           *int64
}

type VoiceSummaryItem struct {
	Key      string
	Name     string
	Quantity int
}

// OrderCreate заказ, отправляемый во внешний API
type OrderCreate struct {
	DinnerType      string
	ServingStyle    ServingStyleType
	DeliveryTime    time.Time
	DeliveryAddress string
	ContactPhone    string
	ContactName     string
	SpecialRequests string
	Items           []OrderCreateItem
	PaymentMethod   string
	Password        string
}

type OrderCreateItem struct {
	MenuItemID int64
	Quantity   int
}

type OrderCreated struct {
	OrderID                int64
	TotalPrice             int64
	LoyaltyDiscountApplied bool
	OriginalPrice          int64
	DiscountAmount         int64
	DiscountPercentage     int
}

type VoiceConfirmation struct {
	SessionID           string
	Order               OrderCreated
	Summary             VoiceSummary
	ConfirmationMessage string
}
