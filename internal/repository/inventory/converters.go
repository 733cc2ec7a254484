package inventory

import "dinner-service/internal/entities"

func ToDomain(i *InventoryDB) *entities.InventoryItem {
	if i == nil {
		return nil
	}
	return &entities.InventoryItem{
		MenuItemID:        i.MenuItemID,
		MenuItemName:      i.MenuItemName,
		MenuItemNameEn:    i.MenuItemNameEn,
		Category:          i.Category,
		CapacityPerWindow: i.CapacityPerWindow,
		OrderedQuantity:   i.OrderedQuantity,
		Notes:             i.Notes,
		LastRestockedAt:   i.LastRestockedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

func FromDomainModify(m *entities.InventoryModify) *InventoryModifyDB {
	if m == nil {
		return nil
	}
	return &InventoryModifyDB{
		MenuItemID:        m.MenuItemID,
		CapacityPerWindow: m.CapacityPerWindow,
		OrderedQuantity:   m.OrderedQuantity,
		Notes:             m.Notes,
		LastRestockedAt:   m.LastRestockedAt,
	}
}

func ToReservationDomain(r *ReservationDB) *entities.Reservation {
	if r == nil {
		return nil
	}
	return &entities.Reservation{
		ID:           r.ID,
		MenuItemID:   r.MenuItemID,
		OrderID:      r.OrderID,
		WindowStart:  r.WindowStart,
		DeliveryTime: r.DeliveryTime,
		Quantity:     r.Quantity,
		Consumed:     r.Consumed,
		ExpiresAt:    r.ExpiresAt,
		CreatedAt:    r.CreatedAt,
	}
}

func FromReservationDomain(r entities.Reservation) ReservationDB {
	return ReservationDB{
		MenuItemID:   r.MenuItemID,
		OrderID:      r.OrderID,
		WindowStart:  r.WindowStart,
		DeliveryTime: r.DeliveryTime,
		Quantity:     r.Quantity,
		ExpiresAt:    r.ExpiresAt,
	}
}
