package inventory

import "time"

type InventoryDB struct {
	MenuItemID        int64
	MenuItemName      string
	MenuItemNameEn    string
	Category          string
	CapacityPerWindow int
	OrderedQuantity   int
	Notes             *string
	LastRestockedAt   *time.Time
	UpdatedAt         time.Time
}

type InventoryModifyDB struct {
	MenuItemID        int64
	CapacityPerWindow *int
	OrderedQuantity   *int
	Notes             *string
	LastRestockedAt   *time.Time
}

type ReservationDB struct {
	ID           int64
	MenuItemID   int64
	OrderID      int64
	WindowStart  time.Time
	DeliveryTime time.Time
	Quantity     int
	Consumed     bool
	ExpiresAt    time.Time
	CreatedAt    time.Time
}
