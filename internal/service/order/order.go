package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinner-service/internal/entities"
	"dinner-service/internal/service/eligibility"
	"dinner-service/pkg/logger"
)

type Service struct {
	gateway  DinnerGateway
	engine   Engine
	notifier Notifier
	log      serviceLogger
}

func New(gateway DinnerGateway, engine Engine, notifier Notifier, log serviceLogger) *Service {
	return &Service{
		gateway:  gateway,
		engine:   engine,
		notifier: notifier,
		log:      log,
	}
}

// ListOrders заказы пользователя с решениями по изменению и отмене
func (s *Service) ListOrders(ctx context.Context, session entities.Session, now time.Time) (*entities.OrderList, error) {
	orders, err := s.gateway.ListOrders(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]entities.OrderView, 0, len(orders))
	for _, order := range orders {
		verdict, err := s.engine.Evaluate(order, now)
		s.observeQuote("list", order, err)

		views = append(views, entities.OrderView{Order: order, Eligibility: verdict})
	}

	return &entities.OrderList{
		Orders:               views,
		PendingApprovalCount: s.engine.PendingApprovalCount(orders),
	}, nil
}

func (s *Service) GetEligibility(ctx context.Context, session entities.Session, orderID int64, now time.Time) (*entities.OrderView, error) {
	order, err := s.getOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}

	verdict, err := s.engine.Evaluate(*order, now)
	s.observeQuote("eligibility", *order, err)

	return &entities.OrderView{Order: *order, Eligibility: verdict}, nil
}

func (s *Service) QuoteCancellation(ctx context.Context, session entities.Session, orderID int64, now time.Time) (*entities.CancellationQuote, error) {
	order, err := s.getOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.QuoteCancellation(*order, now)
	s.observeQuote("cancel_quote", *order, err)

	return &quote, nil
}

// CancelOrder внешний API остаётся источником истины, локальная проверка только отсекает заведомо невозможное
func (s *Service) CancelOrder(ctx context.Context, session entities.Session, orderID int64, now time.Time) (*entities.CancellationQuote, error) {
	order, err := s.getOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}

	if !s.engine.CanCancel(*order) {
		return nil, fmt.Errorf("cancel order %d: %w", orderID, ErrCannotCancel)
	}

	quote, err := s.engine.QuoteCancellation(*order, now)
	s.observeQuote("cancel", *order, err)

	if err := s.gateway.CancelOrder(ctx, session, orderID); err != nil {
		return nil, fmt.Errorf("cancel order %d: %w", orderID, err)
	}

	if err := s.notifier.NotifyCancelled(ctx, *order, quote, now); err != nil {
		s.log.Warn("failed to publish cancellation notice",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		)
	}

	return &quote, nil
}

func (s *Service) CheckModification(ctx context.Context, session entities.Session, orderID int64, now time.Time) (*entities.ModificationCheck, error) {
	order, err := s.getOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}

	window := s.engine.ModificationWindow(*order, now)
	return &entities.ModificationCheck{
		OrderID:   order.ID,
		CanModify: s.engine.CanModify(*order, now),
		Window:    window,
		Prompt:    eligibility.ModificationPrompt(window),
	}, nil
}

// RequestModification создаёт заявку на изменение, сбор решает администратор во внешнем API
func (s *Service) RequestModification(
	ctx context.Context,
	session entities.Session,
	modify entities.ChangeRequestModify,
	now time.Time,
) (*entities.ChangeRequestResult, error) {
	if len(modify.Items) == 0 {
		return nil, ErrEmptyChange
	}

	order, err := s.getOrder(ctx, session, modify.OrderID)
	if err != nil {
		return nil, err
	}

	window := s.engine.ModificationWindow(*order, now)
	if !s.engine.CanModify(*order, now) {
		if !window.Allowed {
			return nil, fmt.Errorf("%w: %s", ErrCannotModify, window.Message)
		}
		return nil, fmt.Errorf("%w: order %d is %s/%s",
			ErrCannotModify, order.ID, order.Status, order.AdminApprovalStatus)
	}

	created, err := s.gateway.CreateChangeRequest(ctx, session, modify)
	if err != nil {
		return nil, fmt.Errorf("create change request for order %d: %w", modify.OrderID, err)
	}

	return &entities.ChangeRequestResult{
		ChangeRequest: *created,
		AdvisoryFee:   window.FeeAmount,
		Prompt:        eligibility.ModificationPrompt(window),
	}, nil
}

func (s *Service) ListChangeRequests(ctx context.Context, session entities.Session, orderID int64) ([]entities.ChangeRequest, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	requests, err := s.gateway.ListChangeRequests(ctx, session, orderID)
	if err != nil {
		return nil, fmt.Errorf("list change requests for order %d: %w", orderID, err)
	}
	return requests, nil
}

func (s *Service) getOrder(ctx context.Context, session entities.Session, orderID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.gateway.GetOrder(ctx, session, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	return order, nil
}

// observeQuote комиссия больше суммы заказа значит политика настроена неверно, котировка при этом валидна
func (s *Service) observeQuote(operation string, order entities.Order, err error) {
	if err == nil {
		return
	}

	if errors.Is(err, eligibility.ErrFeeExceedsTotal) {
		FeeOverflowTotal.WithLabelValues(operation).Inc()
	}
	s.log.Error("cancellation quote inconsistent with policy",
		logger.NewField("operation", operation),
		logger.NewField("order_id", order.ID),
		logger.NewField("total_price", order.TotalPrice),
		logger.NewField("error", err),
	)
}
