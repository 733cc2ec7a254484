package entities

import "time"

type InventoryItem struct {
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

// InventoryModify частичное обновление строки склада, nil поля не трогаем
type InventoryModify struct {
	MenuItemID        int64
	CapacityPerWindow *int
	OrderedQuantity   *int
	Notes             *string
	LastRestockedAt   *time.Time
}

// InventoryWindow окно резервирования, [Start, End)
type InventoryWindow struct {
	Start time.Time
	End   time.Time
}

func (w InventoryWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// InventorySnapshot строка недельного отчёта по складу
type InventorySnapshot struct {
	Item           InventoryItem
	Window         InventoryWindow
	Reserved       int
	Remaining      int
	WeeklyReserved int
	ReservedByDate []DailyReserved
	WeekStart      time.Time
}

type DailyReserved struct {
	Date     time.Time
	Quantity int
}

type Reservation struct {
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

type ReservationRequest struct {
	OrderID      int64
	DeliveryTime time.Time
	Items        []ReservationItem
}

type ReservationItem struct {
	MenuItemID int64
	Quantity   int
}

// OrderStatusEvent событие из топика order.status.changed
type OrderStatusEvent struct {
	OrderID int64
	Status  OrderStatusType
}
