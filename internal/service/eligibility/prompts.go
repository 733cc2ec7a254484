package eligibility

import (
	"fmt"
	"time"

	"dinner-service/internal/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	freeChangeMessage = "전날까지는 재고 내에서 무료로 수정할 수 있습니다."

	preparationStartedPrompt = "조리가 시작된 주문은 취소할 수 없습니다.\n\n" +
		"조리 시작 이후에는 전액 환불이 불가능하며, 재고는 이미 소진되었습니다.\n\n" +
		"정말 취소하시겠습니까? (환불 불가)"
)

var printer = message.NewPrinter(language.Korean)

// FormatWon 10000 -> "10,000"
func FormatWon(amount int64) string {
	return printer.Sprintf("%d", amount)
}

func tooCloseMessage(cutoff time.Duration) string {
	return fmt.Sprintf("배달 시간 %d시간 전 이후에는 변경할 수 없습니다.", int(cutoff.Hours()))
}

func sameDayMessage(fee int64) string {
	return fmt.Sprintf("당일 예약 변경으로 인해 추가금 %s원이 부과됩니다.", FormatWon(fee))
}

// CancelPrompt текст подтверждения перед отменой заказа
func CancelPrompt(quote entities.CancellationQuote) string {
	if quote.PreparationStarted {
		return preparationStartedPrompt
	}

	if quote.Fee == 0 {
		return fmt.Sprintf("주문 취소 시 수수료는 없습니다.\n환불 금액: %s원\n(배달일로부터 %d일 전)",
			FormatWon(quote.Refund), quote.DaysUntilDelivery)
	}

	return fmt.Sprintf("주문 취소 시 수수료 %s원이 발생합니다.\n환불 금액: %s원\n(배달일로부터 %d일 전)\n\n취소하시겠습니까?",
		FormatWon(quote.Fee), FormatWon(quote.Refund), quote.DaysUntilDelivery)
}

// ModificationPrompt текст подтверждения перед заявкой на изменение
func ModificationPrompt(window entities.ModificationWindow) string {
	if !window.Allowed {
		return window.Message
	}

	if window.FeeAmount > 0 {
		return fmt.Sprintf("%s\n\n이번 변경에는 추가금 %s원이 부과됩니다.\n관리자 승인 시 결제됩니다.\n\n변경 요청을 진행하시겠습니까?",
			window.Message, FormatWon(window.FeeAmount))
	}

	return fmt.Sprintf("%s\n\n관리자 승인 시 최종 확정됩니다.\n\n변경 요청을 진행하시겠습니까?", window.Message)
}
