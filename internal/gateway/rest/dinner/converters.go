package dinner

import (
	"fmt"
	"strings"
	"time"

	"dinner-service/internal/entities"
)

// Удалённый API отдаёт LocalDateTime без зоны, такие значения читаем в зоне политики
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

func parseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", raw)
}

func parseOptionalTimestamp(raw *string, loc *time.Location) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := parseTimestamp(*raw, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toDomainOrders(list []orderDTO, loc *time.Location) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(list))
	for i := range list {
		order, err := toDomainOrder(list[i], loc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func toDomainOrder(dto orderDTO, loc *time.Location) (entities.Order, error) {
	status, err := entities.ParseOrderStatus(dto.Status)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %d: %w", dto.ID, err)
	}

	approval, err := entities.ParseApprovalStatus(dto.AdminApprovalStatus)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %d: %w", dto.ID, err)
	}

	deliveryTime, err := parseTimestamp(dto.DeliveryTime, loc)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %d delivery_time: %w", dto.ID, err)
	}

	var createdAt time.Time
	if dto.CreatedAt != "" {
		createdAt, err = parseTimestamp(dto.CreatedAt, loc)
		if err != nil {
			return entities.Order{}, fmt.Errorf("order %d created_at: %w", dto.ID, err)
		}
	}

	items := make([]entities.OrderItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, entities.OrderItem{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			NameEn:     item.NameEn,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	// serving_style не участвует в правилах, неизвестный стиль оставляем как есть
	style := entities.ServingStyleType(strings.ToLower(dto.ServingStyle))

	return entities.Order{
		ID:                  dto.ID,
		DinnerName:          dto.DinnerName,
		DinnerNameEn:        dto.DinnerNameEn,
		ServingStyle:        style,
		DeliveryTime:        deliveryTime,
		DeliveryAddress:     dto.DeliveryAddress,
		TotalPrice:          dto.TotalPrice,
		Status:              status,
		AdminApprovalStatus: approval,
		PaymentStatus:       dto.PaymentStatus,
		CreatedAt:           createdAt,
		Items:               items,
	}, nil
}

func toDomainChangeRequests(list []changeRequestDTO, loc *time.Location) ([]entities.ChangeRequest, error) {
	requests := make([]entities.ChangeRequest, 0, len(list))
	for i := range list {
		cr, err := toDomainChangeRequest(list[i], loc)
		if err != nil {
			return nil, err
		}
		requests = append(requests, cr)
	}
	return requests, nil
}

func toDomainChangeRequest(dto changeRequestDTO, loc *time.Location) (entities.ChangeRequest, error) {
	status, err := entities.ParseChangeRequestStatus(dto.Status)
	if err != nil {
		return entities.ChangeRequest{}, fmt.Errorf("change request %d: %w", dto.ID, err)
	}

	var requestedAt time.Time
	if dto.RequestedAt != "" {
		requestedAt, err = parseTimestamp(dto.RequestedAt, loc)
		if err != nil {
			return entities.ChangeRequest{}, fmt.Errorf("change request %d requested_at: %w", dto.ID, err)
		}
	}

	approvedAt, err := parseOptionalTimestamp(dto.ApprovedAt, loc)
	if err != nil {
		return entities.ChangeRequest{}, fmt.Errorf("change request %d approved_at: %w", dto.ID, err)
	}

	rejectedAt, err := parseOptionalTimestamp(dto.RejectedAt, loc)
	if err != nil {
		return entities.ChangeRequest{}, fmt.Errorf("change request %d rejected_at: %w", dto.ID, err)
	}

	return entities.ChangeRequest{
		ID:                        dto.ID,
		OrderID:                   dto.OrderID,
		Status:                    status,
		OriginalTotalAmount:       dto.OriginalTotalAmount,
		NewTotalAmount:            dto.NewTotalAmount,
		ChangeFeeAmount:           dto.ChangeFeeAmount,
		ExtraChargeAmount:         dto.ExtraChargeAmount,
		ExpectedRefundAmount:      dto.ExpectedRefundAmount,
		RequiresAdditionalPayment: dto.RequiresAdditionalPayment,
		RequiresRefund:            dto.RequiresRefund,
		RequestedAt:               requestedAt,
		ApprovedAt:                approvedAt,
		RejectedAt:                rejectedAt,
		Reason:                    dto.Reason,
		AdminComment:              dto.AdminComment,
	}, nil
}

func toChangeRequestCreateDTO(modify entities.ChangeRequestModify) changeRequestCreateDTO {
	items := make([]changeRequestItemDTO, 0, len(modify.Items))
	for _, item := range modify.Items {
		items = append(items, changeRequestItemDTO{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}
	return changeRequestCreateDTO{
		Items:  items,
		Reason: modify.Reason,
	}
}

func toDomainProfile(dto profileDTO) entities.Profile {
	return entities.Profile{
		ID:      dto.ID,
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Address: dto.Address,
		Role:    entities.UserRole(strings.ToUpper(dto.Role)),
		HasCard: dto.HasCard || strings.TrimSpace(dto.CardNumber) != "",
	}
}

func toOrderCreateDTO(order entities.OrderCreate, loc *time.Location) orderCreateDTO {
	items := make([]orderCreateItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderCreateItemDTO{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}
	return orderCreateDTO{
		DinnerType:      order.DinnerType,
		ServingStyle:    order.ServingStyle.String(),
		DeliveryTime:    order.DeliveryTime.In(loc).Format("2006-01-02T15:04:05"),
		DeliveryAddress: order.DeliveryAddress,
		ContactPhone:    order.ContactPhone,
		ContactName:     order.ContactName,
		SpecialRequests: order.SpecialRequests,
		Items:           items,
		PaymentMethod:   order.PaymentMethod,
		Password:        order.Password,
	}
}

func toDomainOrderCreated(dto orderCreatedDTO) entities.OrderCreated {
	return entities.OrderCreated{
		OrderID:                dto.OrderID,
		TotalPrice:             dto.TotalPrice,
		LoyaltyDiscountApplied: dto.LoyaltyDiscountApplied,
		OriginalPrice:          dto.OriginalPrice,
		DiscountAmount:         dto.DiscountAmount,
		DiscountPercentage:     dto.DiscountPercentage,
	}
}
