package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dinner-service/internal/entities"
	"dinner-service/internal/repository"
	"dinner-service/internal/service/inventory"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var inventoryColumns = []string{
	"menu_item_id",
	"menu_item_name",
	"menu_item_name_en",
	"category",
	"capacity_per_window",
	"ordered_quantity",
	"notes",
	"last_restocked_at",
	"updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListItems(ctx context.Context) ([]entities.InventoryItem, error) {
	query, args, err := qb.
		Select(inventoryColumns...).
		From("inventory").
		OrderBy("menu_item_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository list error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.InventoryItem, 0)
	for rows.Next() {
		var model InventoryDB
		if err := scanInventory(rows, &model); err != nil {
			return nil, fmt.Errorf("unexpected inventory repository list scan error: %w", err)
		}
		items = append(items, *ToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected inventory repository list rows error: %w", err)
	}

	return items, nil
}

func (r *Repository) GetItem(ctx context.Context, menuItemID int64) (*entities.InventoryItem, error) {
	return r.getItem(ctx, menuItemID, false)
}

// GetItemForUpdate блокирует строку до конца транзакции из контекста
func (r *Repository) GetItemForUpdate(ctx context.Context, menuItemID int64) (*entities.InventoryItem, error) {
	return r.getItem(ctx, menuItemID, true)
}

func (r *Repository) getItem(ctx context.Context, menuItemID int64, forUpdate bool) (*entities.InventoryItem, error) {
	builder := qb.
		Select(inventoryColumns...).
		From("inventory").
		Where(sq.Eq{"menu_item_id": menuItemID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository get error: %w", err)
	}

	var model InventoryDB
	err = scanInventory(r.querier.QueryRow(ctx, query, args...), &model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected inventory repository get error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) UpdateItem(ctx context.Context, modify entities.InventoryModify) (*entities.InventoryItem, error) {
	modifyDB := FromDomainModify(&modify)

	builder := qb.
		Update("inventory")

	// опционные поля
	if modifyDB.CapacityPerWindow != nil {
		builder = builder.Set("capacity_per_window", *modifyDB.CapacityPerWindow)
	}
	if modifyDB.OrderedQuantity != nil {
		builder = builder.Set("ordered_quantity", *modifyDB.OrderedQuantity)
	}
	if modifyDB.Notes != nil {
		builder = builder.Set("notes", *modifyDB.Notes)
	}
	if modifyDB.LastRestockedAt != nil {
		builder = builder.Set("last_restocked_at", *modifyDB.LastRestockedAt)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"menu_item_id": modifyDB.MenuItemID}).
		Suffix("RETURNING " + strings.Join(inventoryColumns, ", "))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository update error: %w", err)
	}

	var model InventoryDB
	err = scanInventory(r.querier.QueryRow(ctx, query, args...), &model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inventory.ErrItemNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, inventory.ErrInvalidQuantity
		}
		return nil, fmt.Errorf("unexpected inventory repository update error: %w", err)
	}

	return ToDomain(&model), nil
}

func scanInventory(row pgx.Row, model *InventoryDB) error {
	return row.Scan(
		&model.MenuItemID,
		&model.MenuItemName,
		&model.MenuItemNameEn,
		&model.Category,
		&model.CapacityPerWindow,
		&model.OrderedQuantity,
		&model.Notes,
		&model.LastRestockedAt,
		&model.UpdatedAt,
	)
}

