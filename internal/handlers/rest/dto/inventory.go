package dto

import (
	"fmt"
	"time"

	"dinner-service/internal/entities"
)

const (
	dateLayout     = "2006-01-02"
	dayLabelLayout = "1/2"
)

type Inventory struct {
	MenuItemID        int64          `json:"menu_item_id"`
	MenuItemName      string         `json:"menu_item_name"`
	MenuItemNameEn    string         `json:"menu_item_name_en"`
	Category          string         `json:"category"`
	CapacityPerWindow int            `json:"capacity_per_window"`
	Reserved          int            `json:"reserved"`
	Remaining         int            `json:"remaining"`
	WeeklyReserved    int            `json:"weekly_reserved"`
	OrderedQuantity   int            `json:"ordered_quantity"`
	WindowStart       string         `json:"window_start"`
	WindowEnd         string         `json:"window_end"`
	Notes             *string        `json:"notes"`
	LastRestockedAt   *string        `json:"last_restocked_at,omitempty"`
	ReservedByDate    map[string]int `json:"reserved_by_date"`
	WeekStart         string         `json:"week_start"`
}

type InventoryItem struct {
	MenuItemID        int64   `json:"menu_item_id"`
	MenuItemName      string  `json:"menu_item_name"`
	CapacityPerWindow int     `json:"capacity_per_window"`
	OrderedQuantity   int     `json:"ordered_quantity"`
	Notes             *string `json:"notes"`
	LastRestockedAt   *string `json:"last_restocked_at,omitempty"`
}

type InventoryOrderRequest struct {
	OrderedQuantity *int `json:"ordered_quantity" validate:"required,gte=0"`
}

type InventoryRestockRequest struct {
	CapacityPerWindow *int    `json:"capacity_per_window" validate:"required,gte=0"`
	Notes             *string `json:"notes" validate:"omitempty,max=1000"`
}

type InventoryItemResponse struct {
	Message string        `json:"message"`
	Item    InventoryItem `json:"item"`
}

type ReservationItem struct {
	MenuItemID int64 `json:"menu_item_id" validate:"gt=0"`
	Quantity   int   `json:"quantity" validate:"gt=0"`
}

type ReservationRequest struct {
	OrderID      int64             `json:"order_id" validate:"gt=0"`
	DeliveryTime string            `json:"delivery_time" validate:"required"`
	Items        []ReservationItem `json:"items" validate:"required,min=1,dive"`
}

type Reservation struct {
	ID           int64  `json:"id"`
	MenuItemID   int64  `json:"menu_item_id"`
	OrderID      int64  `json:"order_id"`
	Quantity     int    `json:"quantity"`
	WindowStart  string `json:"window_start"`
	DeliveryTime string `json:"delivery_time"`
	ExpiresAt    string `json:"expires_at"`
}

type ReservationResponse struct {
	OrderID      int64         `json:"order_id"`
	Reservations []Reservation `json:"reservations"`
}

func FromSnapshots(snapshots []entities.InventorySnapshot) []Inventory {
	result := make([]Inventory, 0, len(snapshots))
	for _, snapshot := range snapshots {
		byDate := make(map[string]int, len(snapshot.ReservedByDate))
		for _, day := range snapshot.ReservedByDate {
			byDate[day.Date.Format(dayLabelLayout)] = day.Quantity
		}

		result = append(result, Inventory{
			MenuItemID:        snapshot.Item.MenuItemID,
			MenuItemName:      snapshot.Item.MenuItemName,
			MenuItemNameEn:    snapshot.Item.MenuItemNameEn,
			Category:          snapshot.Item.Category,
			CapacityPerWindow: snapshot.Item.CapacityPerWindow,
			Reserved:          snapshot.Reserved,
			Remaining:         snapshot.Remaining,
			WeeklyReserved:    snapshot.WeeklyReserved,
			OrderedQuantity:   snapshot.Item.OrderedQuantity,
			WindowStart:       formatTime(snapshot.Window.Start),
			WindowEnd:         formatTime(snapshot.Window.End),
			Notes:             snapshot.Item.Notes,
			LastRestockedAt:   formatTimePtr(snapshot.Item.LastRestockedAt),
			ReservedByDate:    byDate,
			WeekStart:         snapshot.WeekStart.Format(dateLayout),
		})
	}
	return result
}

func FromInventoryItem(message string, item entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		Message: message,
		Item: InventoryItem{
			MenuItemID:        item.MenuItemID,
			MenuItemName:      item.MenuItemName,
			CapacityPerWindow: item.CapacityPerWindow,
			OrderedQuantity:   item.OrderedQuantity,
			Notes:             item.Notes,
			LastRestockedAt:   formatTimePtr(item.LastRestockedAt),
		},
	}
}

// ToDomain время без зоны трактуется в зоне политики
func (r ReservationRequest) ToDomain(location *time.Location) (entities.ReservationRequest, error) {
	deliveryTime, err := ParseDeliveryTime(r.DeliveryTime, location)
	if err != nil {
		return entities.ReservationRequest{}, err
	}

	items := make([]entities.ReservationItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entities.ReservationItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}

	return entities.ReservationRequest{OrderID: r.OrderID, DeliveryTime: deliveryTime, Items: items}, nil
}

func FromReservations(orderID int64, reservations []entities.Reservation) ReservationResponse {
	result := make([]Reservation, 0, len(reservations))
	for _, reservation := range reservations {
		result = append(result, Reservation{
			ID:           reservation.ID,
			MenuItemID:   reservation.MenuItemID,
			OrderID:      reservation.OrderID,
			Quantity:     reservation.Quantity,
			WindowStart:  formatTime(reservation.WindowStart),
			DeliveryTime: formatTime(reservation.DeliveryTime),
			ExpiresAt:    formatTime(reservation.ExpiresAt),
		})
	}
	return ReservationResponse{OrderID: orderID, Reservations: result}
}

var deliveryTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

func ParseDeliveryTime(raw string, location *time.Location) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed, nil
	}
	for _, layout := range deliveryTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: delivery_time %q", ErrInvalidBody, raw)
}
