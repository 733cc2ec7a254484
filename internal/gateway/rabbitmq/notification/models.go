package notification

import "time"

type cancellationMessage struct {
	OrderID            int64     `json:"order_id"`
	Status             string    `json:"status"`
	DeliveryTime       time.Time `json:"delivery_time"`
	TotalPrice         int64     `json:"total_price"`
	CancelFee          int64     `json:"cancel_fee"`
	RefundAmount       int64     `json:"refund_amount"`
	DaysUntilDelivery  int       `json:"days_until_delivery"`
	PreparationStarted bool      `json:"preparation_started"`
	CancelledAt        time.Time `json:"cancelled_at"`
}
