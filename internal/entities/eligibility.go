package entities

type WindowReason string

const (
	ReasonTooCloseToDelivery WindowReason = "too_close_to_delivery"
	ReasonSameDayChange      WindowReason = "same_day_change"
	ReasonFreeChange         WindowReason = "free_change"
)

func (r WindowReason) String() string {
	return string(r)
}

// ModificationWindow результат проверки окна изменения заказа
type ModificationWindow struct {
	Allowed   bool
	FeeAmount int64
	Reason    WindowReason
	Message   string
}

type CancellationQuote struct {
	DaysUntilDelivery  int
	Fee                int64
	Refund             int64
	PreparationStarted bool
	Refundable         bool
}

// Eligibility сводка по заказу для экрана истории заказов
type Eligibility struct {
	CanModify    bool
	CanCancel    bool
	Window       ModificationWindow
	Cancellation CancellationQuote
}

type OrderView struct {
	Order       Order
	Eligibility Eligibility
}

type OrderList struct {
	Orders               []OrderView
	PendingApprovalCount int
}

type ModificationCheck struct {
	OrderID   int64
	CanModify bool
	Window    ModificationWindow
	Prompt    string
}

// ChangeRequestResult созданная заявка и ориентировочный сбор, окончательный считает внешний API
type ChangeRequestResult struct {
	ChangeRequest ChangeRequest
	AdvisoryFee   int64
	Prompt        string
}
