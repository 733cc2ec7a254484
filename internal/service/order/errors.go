package order

import "errors"

var (
	ErrCannotCancel   = errors.New("배송 완료되었거나 이미 취소된 주문은 취소할 수 없습니다.")
	ErrCannotModify   = errors.New("order cannot be modified")
	ErrEmptyChange    = errors.New("change request must contain at least one item")
	ErrInvalidOrderID = errors.New("invalid order id")
)
