package dinner

type orderItemDTO struct {
	ID         int64  `json:"id"`
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	NameEn     string `json:"name_en"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

type orderDTO struct {
	ID                  int64          `json:"id"`
	DinnerName          string         `json:"dinner_name"`
	DinnerNameEn        string         `json:"dinner_name_en"`
	ServingStyle        string         `json:"serving_style"`
	DeliveryTime        string         `json:"delivery_time"`
	DeliveryAddress     string         `json:"delivery_address"`
	TotalPrice          int64          `json:"total_price"`
	Status              string         `json:"status"`
	AdminApprovalStatus string         `json:"admin_approval_status"`
	PaymentStatus       string         `json:"payment_status"`
	CreatedAt           string         `json:"created_at"`
	Items               []orderItemDTO `json:"items"`
}

type changeRequestDTO struct {
	ID                        int64   `json:"id"`
	OrderID                   int64   `json:"order_id"`
	Status                    string  `json:"status"`
	OriginalTotalAmount       int64   `json:"original_total_amount"`
	NewTotalAmount            int64   `json:"new_total_amount"`
	ChangeFeeAmount           int64   `json:"change_fee_amount"`
	ExtraChargeAmount         int64   `json:"extra_charge_amount"`
	ExpectedRefundAmount      int64   `json:"expected_refund_amount"`
	RequiresAdditionalPayment bool    `json:"requires_additional_payment"`
	RequiresRefund            bool    `json:"requires_refund"`
	RequestedAt               string  `json:"requested_at"`
	ApprovedAt                *string `json:"approved_at"`
	RejectedAt                *string `json:"rejected_at"`
	Reason                    *string `json:"reason"`
	AdminComment              *string `json:"admin_comment"`
}

type changeRequestItemDTO struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type changeRequestCreateDTO struct {
	Items  []changeRequestItemDTO `json:"items"`
	Reason *string                `json:"reason,omitempty"`
}

type profileDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Role       string `json:"role"`
	HasCard    bool   `json:"has_card"`
	CardNumber string `json:"card_number"`
}

type orderCreateItemDTO struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type orderCreateDTO struct {
	DinnerType      string               `json:"dinner_type"`
	ServingStyle    string               `json:"serving_style"`
	DeliveryTime    string               `json:"delivery_time"`
	DeliveryAddress string               `json:"delivery_address"`
	ContactPhone    string               `json:"contact_phone,omitempty"`
	ContactName     string               `json:"contact_name,omitempty"`
	SpecialRequests string               `json:"special_requests,omitempty"`
	Items           []orderCreateItemDTO `json:"items"`
	PaymentMethod   string               `json:"payment_method"`
	Password        string               `json:"password,omitempty"`
}

type orderCreatedDTO struct {
	OrderID                int64 `json:"order_id"`
	TotalPrice             int64 `json:"total_price"`
	LoyaltyDiscountApplied bool  `json:"loyalty_discount_applied"`
	OriginalPrice          int64 `json:"original_price"`
	DiscountAmount         int64 `json:"discount_amount"`
	DiscountPercentage     int   `json:"discount_percentage"`
}

type errorDTO struct {
	Error string `json:"error"`
}
