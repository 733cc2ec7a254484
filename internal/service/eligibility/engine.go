package eligibility

import (
	"fmt"
	"math"
	"strings"
	"time"

	"dinner-service/internal/entities"
)

const day = 24 * time.Hour

// Engine чистые правила: не ходит в сеть, не хранит состояние, безопасен для конкурентного вызова.
// Решения носят рекомендательный характер, окончательная проверка остаётся за API заказов.
type Engine struct {
	policy Policy
}

func New(policy Policy) *Engine {
	return &Engine{
		policy: policy,
	}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

func (e *Engine) ModificationWindow(order entities.Order, now time.Time) entities.ModificationWindow {
	untilDelivery := order.DeliveryTime.Sub(now)
	if untilDelivery < e.policy.ChangeCutoff {
		return entities.ModificationWindow{
			Allowed:   false,
			FeeAmount: 0,
			Reason:    entities.ReasonTooCloseToDelivery,
			Message:   tooCloseMessage(e.policy.ChangeCutoff),
		}
	}

	if e.sameCalendarDate(now, order.DeliveryTime) {
		return entities.ModificationWindow{
			Allowed:   true,
			FeeAmount: e.policy.SameDayChangeFee,
			Reason:    entities.ReasonSameDayChange,
			Message:   sameDayMessage(e.policy.SameDayChangeFee),
		}
	}

	return entities.ModificationWindow{
		Allowed:   true,
		FeeAmount: 0,
		Reason:    entities.ReasonFreeChange,
		Message:   freeChangeMessage,
	}
}

func (e *Engine) CanModify(order entities.Order, now time.Time) bool {
	approval := normalizeApproval(order.AdminApprovalStatus)

	// REJECTED, CANCELLED и неизвестные значения блокируют изменение
	if approval != entities.ApprovalPending && approval != entities.ApprovalApproved {
		return false
	}

	if order.Status.IsTerminal() {
		return false
	}

	if approval == entities.ApprovalApproved {
		return e.ModificationWindow(order, now).Allowed
	}

	// до подтверждения администратором заказ можно править без ограничений по времени
	return true
}

func (e *Engine) CanCancel(order entities.Order) bool {
	return !order.Status.IsTerminal()
}

// DaysUntilDelivery ceil((delivery - now) / 24h), может быть нулём или отрицательным
func (e *Engine) DaysUntilDelivery(order entities.Order, now time.Time) int {
	diff := order.DeliveryTime.Sub(now)
	return int(math.Ceil(float64(diff) / float64(day)))
}

// CancelFee табличная комиссия за отмену, не учитывает состояние кухни
func (e *Engine) CancelFee(order entities.Order, now time.Time) int64 {
	if e.DaysUntilDelivery(order, now) >= e.policy.FreeCancelDays {
		return 0
	}
	return e.policy.CancelFee
}

// CancellationFee если кухня уже начала готовить, удерживается вся сумма заказа
func (e *Engine) CancellationFee(order entities.Order, now time.Time, preparationStarted bool) int64 {
	if preparationStarted {
		return order.TotalPrice
	}
	return e.CancelFee(order, now)
}

// Refund возвращает max(total-fee, 0). При fee > total дополнительно отдаёт ErrFeeExceedsTotal
func (e *Engine) Refund(total, fee int64) (int64, error) {
	refund := total - fee
	if refund < 0 {
		return 0, fmt.Errorf("%w: fee=%d total=%d", ErrFeeExceedsTotal, fee, total)
	}
	return refund, nil
}

// QuoteCancellation при ErrFeeExceedsTotal котировка всё равно валидна (refund = 0)
func (e *Engine) QuoteCancellation(order entities.Order, now time.Time) (entities.CancellationQuote, error) {
	preparationStarted := order.Status.PreparationStarted()
	fee := e.CancellationFee(order, now, preparationStarted)
	refund, err := e.Refund(order.TotalPrice, fee)

	quote := entities.CancellationQuote{
		DaysUntilDelivery:  e.DaysUntilDelivery(order, now),
		Fee:                fee,
		Refund:             refund,
		PreparationStarted: preparationStarted,
		Refundable:         refund > 0,
	}

	return quote, err
}

func (e *Engine) Evaluate(order entities.Order, now time.Time) (entities.Eligibility, error) {
	quote, err := e.QuoteCancellation(order, now)

	return entities.Eligibility{
		CanModify:    e.CanModify(order, now),
		CanCancel:    e.CanCancel(order),
		Window:       e.ModificationWindow(order, now),
		Cancellation: quote,
	}, err
}

// PendingApprovalCount заказы, которые ещё ждут решения администратора
func (e *Engine) PendingApprovalCount(orders []entities.Order) int {
	count := 0
	for _, order := range orders {
		approval := strings.TrimSpace(order.AdminApprovalStatus.String())
		if approval == "" {
			continue
		}
		if normalizeApproval(order.AdminApprovalStatus) == entities.ApprovalApproved {
			continue
		}
		if order.Status == entities.OrderCancelled {
			continue
		}
		count++
	}
	return count
}

func (e *Engine) sameCalendarDate(a, b time.Time) bool {
	loc := e.policy.location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func normalizeApproval(status entities.ApprovalStatusType) entities.ApprovalStatusType {
	normalized := strings.ToUpper(strings.TrimSpace(status.String()))
	if normalized == "" {
		return entities.ApprovalPending
	}
	return entities.ApprovalStatusType(normalized)
}
