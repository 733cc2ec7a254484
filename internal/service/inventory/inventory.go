package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"dinner-service/internal/entities"
)

const weekStartLayout = "2006-01-02"

type Service struct {
	repository    Repository
	windowFactory WindowFactory
	txManager     TxManager
	statusFactory HandlerFactory
}

func New(
	repository Repository,
	windowFactory WindowFactory,
	txManager TxManager,
	statusFactory HandlerFactory,
) *Service {
	return &Service{
		repository:    repository,
		windowFactory: windowFactory,
		txManager:     txManager,
		statusFactory: statusFactory,
	}
}

// ResolveWeekStart пустое или кривое значение даёт понедельник текущей недели,
// во втором случае вместе с ErrInvalidWeekStart чтобы хендлер мог залогировать
func (s *Service) ResolveWeekStart(raw string, now time.Time) (time.Time, error) {
	fallback := s.windowFactory.WeekStart(now)

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	parsed, err := time.ParseInLocation(weekStartLayout, raw, s.windowFactory.Location())
	if err != nil {
		return fallback, fmt.Errorf("%w: %q: %w", ErrInvalidWeekStart, raw, err)
	}
	return parsed, nil
}

func (s *Service) WeekSnapshot(ctx context.Context, weekStart time.Time) ([]entities.InventorySnapshot, error) {
	window := s.windowFactory.WindowFrom(weekStart)

	items, err := s.repository.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	reserved, err := s.repository.SumReservedByWindow(ctx, s.windowFactory.WeekStart(window.Start), nil)
	if err != nil {
		return nil, fmt.Errorf("sum reserved by window: %w", err)
	}

	weekly, err := s.repository.SumUnconsumedByDeliveryRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("sum weekly reserved: %w", err)
	}

	byDate, err := s.repository.SumUnconsumedByDate(ctx, window.Start, window.End, s.windowFactory.Location())
	if err != nil {
		return nil, fmt.Errorf("sum reserved by date: %w", err)
	}

	days := s.windowFactory.Days(window)
	snapshots := make([]entities.InventorySnapshot, 0, len(items))
	for _, item := range items {
		daily := make([]entities.DailyReserved, 0, len(days))
		for _, day := range days {
			daily = append(daily, entities.DailyReserved{
				Date:     day,
				Quantity: byDate[item.MenuItemID][day.Format(weekStartLayout)],
			})
		}

		itemReserved := reserved[item.MenuItemID]
		snapshots = append(snapshots, entities.InventorySnapshot{
			Item:           item,
			Window:         window,
			Reserved:       itemReserved,
			Remaining:      max(item.CapacityPerWindow-itemReserved, 0),
			WeeklyReserved: weekly[item.MenuItemID],
			ReservedByDate: daily,
			WeekStart:      window.Start,
		})
	}

	return snapshots, nil
}

func (s *Service) SetOrderedQuantity(ctx context.Context, menuItemID int64, quantity int) (*entities.InventoryItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: ordered quantity must be >= 0", ErrInvalidQuantity)
	}

	item, err := s.repository.UpdateItem(ctx, entities.InventoryModify{
		MenuItemID:      menuItemID,
		OrderedQuantity: &quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("set ordered quantity: %w", err)
	}
	return item, nil
}

// ReceiveOrdered заказанное у поставщика переходит в ёмкость окна
func (s *Service) ReceiveOrdered(ctx context.Context, menuItemID int64) (*entities.InventoryItem, error) {
	var received *entities.InventoryItem

	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		item, err := s.repository.GetItemForUpdate(ctx, menuItemID)
		if err != nil {
			return fmt.Errorf("get inventory item: %w", err)
		}

		capacity := item.CapacityPerWindow + item.OrderedQuantity
		ordered := 0
		received, err = s.repository.UpdateItem(ctx, entities.InventoryModify{
			MenuItemID:        menuItemID,
			CapacityPerWindow: &capacity,
			OrderedQuantity:   &ordered,
		})
		if err != nil {
			return fmt.Errorf("update inventory item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("receive ordered: %w", err)
	}

	return received, nil
}

func (s *Service) Restock(ctx context.Context, menuItemID int64, capacity int, notes *string, now time.Time) (*entities.InventoryItem, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must be >= 0", ErrInvalidQuantity)
	}

	item, err := s.repository.UpdateItem(ctx, entities.InventoryModify{
		MenuItemID:        menuItemID,
		CapacityPerWindow: &capacity,
		Notes:             notes,
		LastRestockedAt:   &now,
	})
	if err != nil {
		return nil, fmt.Errorf("restock: %w", err)
	}
	return item, nil
}

// CheckAvailability влезет ли ещё одна порция в окно доставки, неизвестные позиции false
func (s *Service) CheckAvailability(ctx context.Context, menuItemIDs []int64, deliveryTime time.Time) (map[int64]bool, error) {
	result := make(map[int64]bool, len(menuItemIDs))
	if len(menuItemIDs) == 0 {
		return result, nil
	}

	windowStart := s.windowFactory.WeekStart(deliveryTime)
	reserved, err := s.repository.SumReservedByWindow(ctx, windowStart, menuItemIDs)
	if err != nil {
		return nil, fmt.Errorf("sum reserved by window: %w", err)
	}

	for _, id := range menuItemIDs {
		item, err := s.repository.GetItem(ctx, id)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				result[id] = false
				continue
			}
			return nil, fmt.Errorf("get inventory item %d: %w", id, err)
		}
		result[id] = reserved[id]+1 <= item.CapacityPerWindow
	}

	return result, nil
}

// Reserve резервирует остатки под заказ, все позиции или ни одной
func (s *Service) Reserve(ctx context.Context, request entities.ReservationRequest) ([]entities.Reservation, error) {
	if request.OrderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	quantities, err := aggregateItems(request.Items)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	windowStart := s.windowFactory.WeekStart(request.DeliveryTime)

	var created []entities.Reservation
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		reserved, err := s.repository.SumReservedByWindow(ctx, windowStart, ids)
		if err != nil {
			return fmt.Errorf("sum reserved by window: %w", err)
		}

		reservations := make([]entities.Reservation, 0, len(ids))
		for _, id := range ids {
			item, err := s.repository.GetItem(ctx, id)
			if err != nil {
				return fmt.Errorf("get inventory item %d: %w", id, err)
			}

			if reserved[id]+quantities[id] > item.CapacityPerWindow {
				return fmt.Errorf("%w: menu item %d, requested %d, remaining %d",
					ErrInsufficientStock, id, quantities[id], max(item.CapacityPerWindow-reserved[id], 0))
			}

			reservations = append(reservations, entities.Reservation{
				MenuItemID:   id,
				OrderID:      request.OrderID,
				WindowStart:  windowStart,
				DeliveryTime: request.DeliveryTime,
				Quantity:     quantities[id],
				ExpiresAt:    request.DeliveryTime,
			})
		}

		created, err = s.repository.CreateReservations(ctx, reservations)
		if err != nil {
			return fmt.Errorf("create reservations: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reserve order %d: %w", request.OrderID, err)
	}

	return created, nil
}

// ApplyOrderStatus реакция склада на смену статуса заказа, лишние статусы пропускаем
func (s *Service) ApplyOrderStatus(ctx context.Context, event entities.OrderStatusEvent) (int64, error) {
	if event.OrderID <= 0 {
		return 0, ErrInvalidOrderID
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		if errors.Is(err, ErrIgnoredStatus) {
			return 0, nil
		}
		return 0, err
	}

	affected, err := executeFn(ctx, event.OrderID)
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (s *Service) ReleaseExpired(ctx context.Context, now time.Time) (int64, error) {
	released, err := s.repository.DeleteExpiredUnconsumed(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("release expired reservations: %w", err)
	}
	return released, nil
}

func aggregateItems(items []entities.ReservationItem) (map[int64]int, error) {
	if len(items) == 0 {
		return nil, ErrEmptyReservation
	}

	quantities := make(map[int64]int, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: menu item %d quantity %d", ErrInvalidQuantity, item.MenuItemID, item.Quantity)
		}
		quantities[item.MenuItemID] += item.Quantity
	}
	return quantities, nil
}
