package inventory

import (
	"context"
	"fmt"
	"time"

	"dinner-service/internal/entities"
	"dinner-service/internal/repository"
	"dinner-service/internal/service/inventory"

	sq "github.com/Masterminds/squirrel"
)

// SumReservedByWindow все резервы окна, включая уже списанные кухней
func (r *Repository) SumReservedByWindow(ctx context.Context, windowStart time.Time, menuItemIDs []int64) (map[int64]int, error) {
	builder := qb.
		Select("menu_item_id", "COALESCE(SUM(quantity), 0)").
		From("inventory_reservations").
		Where(sq.Eq{"window_start": windowStart}).
		GroupBy("menu_item_id")
	if len(menuItemIDs) > 0 {
		builder = builder.Where(sq.Eq{"menu_item_id": menuItemIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected reservation repository sum by window error: %w", err)
	}

	return r.sumByItem(ctx, query, args)
}

// SumUnconsumedByDeliveryRange несписанные резервы с доставкой в [from, to)
func (r *Repository) SumUnconsumedByDeliveryRange(ctx context.Context, from, to time.Time) (map[int64]int, error) {
	query, args, err := qb.
		Select("menu_item_id", "COALESCE(SUM(quantity), 0)").
		From("inventory_reservations").
		Where(sq.Eq{"consumed": false}).
		Where(sq.GtOrEq{"delivery_time": from}).
		Where(sq.Lt{"delivery_time": to}).
		GroupBy("menu_item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected reservation repository sum by range error: %w", err)
	}

	return r.sumByItem(ctx, query, args)
}

// SumUnconsumedByDate разбивка по календарным дням в зоне location
func (r *Repository) SumUnconsumedByDate(ctx context.Context, from, to time.Time, location *time.Location) (map[int64]map[string]int, error) {
	query := `
		SELECT menu_item_id,
		       to_char((delivery_time AT TIME ZONE $3)::date, 'YYYY-MM-DD') AS day,
		       COALESCE(SUM(quantity), 0)
		FROM inventory_reservations
		WHERE NOT consumed
		  AND delivery_time >= $1
		  AND delivery_time < $2
		GROUP BY menu_item_id, day
	`

	rows, err := r.querier.Query(ctx, query, from, to, location.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected reservation repository sum by date error: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]map[string]int)
	for rows.Next() {
		var (
			menuItemID int64
			day        string
			quantity   int
		)
		if err := rows.Scan(&menuItemID, &day, &quantity); err != nil {
			return nil, fmt.Errorf("unexpected reservation repository sum by date scan error: %w", err)
		}
		if result[menuItemID] == nil {
			result[menuItemID] = make(map[string]int)
		}
		result[menuItemID][day] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected reservation repository sum by date rows error: %w", err)
	}

	return result, nil
}

func (r *Repository) CreateReservations(ctx context.Context, reservations []entities.Reservation) ([]entities.Reservation, error) {
	if len(reservations) == 0 {
		return []entities.Reservation{}, nil
	}

	builder := qb.
		Insert("inventory_reservations").
		Columns("menu_item_id", "order_id", "window_start", "delivery_time", "quantity", "expires_at")

	for _, reservation := range reservations {
		model := FromReservationDomain(reservation)
		builder = builder.Values(
			model.MenuItemID,
			model.OrderID,
			model.WindowStart,
			model.DeliveryTime,
			model.Quantity,
			model.ExpiresAt,
		)
	}

	query, args, err := builder.
		Suffix("RETURNING id, menu_item_id, order_id, window_start, delivery_time, quantity, consumed, expires_at, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected reservation repository create error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected reservation repository create error: %w", err)
	}
	defer rows.Close()

	created := make([]entities.Reservation, 0, len(reservations))
	for rows.Next() {
		var model ReservationDB
		err := rows.Scan(
			&model.ID,
			&model.MenuItemID,
			&model.OrderID,
			&model.WindowStart,
			&model.DeliveryTime,
			&model.Quantity,
			&model.Consumed,
			&model.ExpiresAt,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected reservation repository create scan error: %w", err)
		}
		created = append(created, *ToReservationDomain(&model))
	}
	if err := rows.Err(); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected reservation repository create rows error: %w", err)
	}

	return created, nil
}

func (r *Repository) MarkConsumedByOrder(ctx context.Context, orderID int64) (int64, error) {
	query := `
		UPDATE inventory_reservations
		SET consumed = TRUE
		WHERE order_id = $1 AND NOT consumed
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected reservation repository consume error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) DeleteUnconsumedByOrder(ctx context.Context, orderID int64) (int64, error) {
	query := `
		DELETE FROM inventory_reservations
		WHERE order_id = $1 AND NOT consumed
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected reservation repository release error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) DeleteExpiredUnconsumed(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM inventory_reservations
		WHERE NOT consumed AND expires_at < $1
	`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected reservation repository expire error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) sumByItem(ctx context.Context, query string, args []any) (map[int64]int, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected reservation repository sum error: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]int)
	for rows.Next() {
		var (
			menuItemID int64
			quantity   int
		)
		if err := rows.Scan(&menuItemID, &quantity); err != nil {
			return nil, fmt.Errorf("unexpected reservation repository sum scan error: %w", err)
		}
		result[menuItemID] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected reservation repository sum rows error: %w", err)
	}

	return result, nil
}
