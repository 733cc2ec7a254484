package inventory

import "errors"

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient stock for delivery window")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidWeekStart  = errors.New("invalid week start")
	ErrEmptyReservation  = errors.New("reservation has no items")
	ErrInvalidOrderID    = errors.New("invalid order id")

	ErrIgnoredStatus = errors.New("order status does not affect reservations")
)
