package eligibility

import "errors"

// ErrFeeExceedsTotal комиссия больше суммы заказа, это ошибка конфигурации политики
var ErrFeeExceedsTotal = errors.New("cancellation fee exceeds order total")
