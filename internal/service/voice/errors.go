package voice

import "errors"

var (
	ErrSessionNotFound     = errors.New("voice session not found")
	ErrAlreadyPlaced       = errors.New("이미 주문이 완료되었습니다.")
	ErrNotReady            = errors.New("주문 정보가 아직 완성되지 않았습니다.")
	ErrCardRequired        = errors.New("주문을 하려면 카드 정보가 필요합니다. 내 정보에서 카드 정보를 등록해주세요.")
	ErrUnknownDinner       = errors.New("알 수 없는 디너입니다.")
	ErrUnknownMenuItem     = errors.New("알 수 없는 메뉴 항목입니다.")
	ErrStyleNotAvailable   = errors.New("샴페인 축제 디너는 그랜드 또는 디럭스 스타일만 가능합니다.")
	ErrInvalidDeliverySlot = errors.New("배달 날짜/시간 형식이 올바르지 않습니다.")
)
