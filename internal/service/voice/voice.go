package voice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dinner-service/internal/entities"
	"dinner-service/internal/service/eligibility"

	"github.com/google/uuid"
)

const paymentMethod = "voice-bot-card"

type Service struct {
	gateway  DinnerGateway
	store    SessionStore
	catalog  *Catalog
	location *time.Location
	ttl      time.Duration
}

func New(gateway DinnerGateway, store SessionStore, catalog *Catalog, location *time.Location, ttl time.Duration) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		gateway:  gateway,
		store:    store,
		catalog:  catalog,
		location: location,
		ttl:      ttl,
	}
}

func (s *Service) Start(ctx context.Context, session entities.Session, now time.Time) (*entities.VoiceSession, *entities.VoiceSummary, error) {
	profile, err := s.gateway.GetProfile(ctx, session)
	if err != nil {
		return nil, nil, fmt.Errorf("get profile: %w", err)
	}

	voiceSession := entities.VoiceSession{
		ID:            uuid.NewString(),
		UserID:        profile.ID,
		CustomerName:  profile.Name,
		CustomerPhone: profile.Phone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if profile.Address != "" {
		address := profile.Address
		voiceSession.State.DeliveryAddress = &address
	}

	if err := s.store.Create(ctx, voiceSession); err != nil {
		return nil, nil, fmt.Errorf("create voice session: %w", err)
	}

	summary := s.catalog.buildSummary(voiceSession)
	return &voiceSession, &summary, nil
}

func (s *Service) UpdateState(
	ctx context.Context,
	session entities.Session,
	id string,
	patch entities.VoiceOrderState,
	now time.Time,
) (*entities.VoiceSummary, error) {
	profile, err := s.gateway.GetProfile(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	updated, err := s.store.Update(ctx, id, func(voiceSession *entities.VoiceSession) error {
		if voiceSession.UserID != profile.ID {
			return ErrSessionNotFound
		}
		if voiceSession.OrderPlaced {
			return ErrAlreadyPlaced
		}
		voiceSession.State = s.catalog.mergeState(voiceSession.State, patch)
		voiceSession.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update voice session %s: %w", id, err)
	}

	summary := s.catalog.buildSummary(*updated)
	return &summary, nil
}

func (s *Service) Summary(ctx context.Context, session entities.Session, id string) (*entities.VoiceSummary, error) {
	profile, err := s.gateway.GetProfile(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	voiceSession, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get voice session %s: %w", id, err)
	}
	if voiceSession.UserID != profile.ID {
		return nil, fmt.Errorf("get voice session %s: %w", id, ErrSessionNotFound)
	}

	summary := s.catalog.buildSummary(*voiceSession)
	return &summary, nil
}

// Confirm оформляет заказ во внешнем API, повторное подтверждение той же сессии отклоняется
func (s *Service) Confirm(
	ctx context.Context,
	session entities.Session,
	id string,
	password string,
	now time.Time,
) (*entities.VoiceConfirmation, error) {
	profile, err := s.gateway.GetProfile(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var created *entities.OrderCreated
	updated, err := s.store.Update(ctx, id, func(voiceSession *entities.VoiceSession) error {
		if voiceSession.UserID != profile.ID {
			return ErrSessionNotFound
		}
		if voiceSession.OrderPlaced {
			return ErrAlreadyPlaced
		}

		summary := s.catalog.buildSummary(*voiceSession)
		if !summary.ReadyForConfirmation {
			if len(summary.MissingFields) == 0 {
				return ErrNotReady
			}
			return fmt.Errorf("%w: %s", ErrNotReady, strings.Join(summary.MissingFields, ", "))
		}
		if !profile.HasCard {
			return ErrCardRequired
		}

		order, err := s.toOrderCreate(*voiceSession, summary, password)
		if err != nil {
			return err
		}

		created, err = s.gateway.CreateOrder(ctx, session, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		voiceSession.OrderPlaced = true
		voiceSession.OrderID = &created.OrderID
		voiceSession.TotalPrice = &created.TotalPrice
		voiceSession.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("confirm voice session %s: %w", id, err)
	}

	summary := s.catalog.buildSummary(*updated)
	return &entities.VoiceConfirmation{
		SessionID:           updated.ID,
		Order:               *created,
		Summary:             summary,
		ConfirmationMessage: confirmationMessage(summary.DinnerName, *created),
	}, nil
}

// EvictIdle удаляет сессии без активности дольше ttl
func (s *Service) EvictIdle(ctx context.Context, now time.Time) (int, error) {
	evicted, err := s.store.DeleteIdleBefore(ctx, now.Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("delete idle voice sessions: %w", err)
	}
	return evicted, nil
}

func (s *Service) toOrderCreate(
	voiceSession entities.VoiceSession,
	summary entities.VoiceSummary,
	password string,
) (entities.OrderCreate, error) {
	state := voiceSession.State

	dinner, ok := s.catalog.Dinner(deref(state.DinnerType))
	if !ok {
		return entities.OrderCreate{}, fmt.Errorf("%w: %q", ErrUnknownDinner, deref(state.DinnerType))
	}

	style, err := entities.ParseServingStyle(deref(state.ServingStyle))
	if err != nil {
		return entities.OrderCreate{}, err
	}
	if dinner.Key == dinnerChampagneFeast && style == entities.StyleSimple {
		return entities.OrderCreate{}, ErrStyleNotAvailable
	}

	deliveryTime, err := s.parseSlot(summary.DeliverySlot)
	if err != nil {
		return entities.OrderCreate{}, err
	}

	items := make([]entities.OrderCreateItem, 0, len(summary.Items))
	for _, line := range summary.Items {
		item, ok := s.catalog.Item(line.Key)
		if !ok {
			return entities.OrderCreate{}, fmt.Errorf("%w: %q", ErrUnknownMenuItem, line.Name)
		}
		items = append(items, entities.OrderCreateItem{MenuItemID: item.ID, Quantity: line.Quantity})
	}

	contactName := strings.TrimSpace(deref(state.ContactName))
	if contactName == "" {
		contactName = voiceSession.CustomerName
	}

	return entities.OrderCreate{
		DinnerType:      dinner.Key,
		ServingStyle:    style,
		DeliveryTime:    deliveryTime,
		DeliveryAddress: summary.DeliveryAddress,
		ContactPhone:    summary.ContactPhone,
		ContactName:     contactName,
		SpecialRequests: summary.SpecialRequests,
		Items:           items,
		PaymentMethod:   paymentMethod,
		Password:        password,
	}, nil
}

func (s *Service) parseSlot(slot string) (time.Time, error) {
	for _, layout := range deliveryDateTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, slot, s.location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeliverySlot, slot)
}

func confirmationMessage(dinnerName string, created entities.OrderCreated) string {
	message := fmt.Sprintf("%s 주문이 완료되었습니다. 주문 번호 %d, 결제 금액 %s원.",
		dinnerName, created.OrderID, eligibility.FormatWon(created.TotalPrice))
	if created.LoyaltyDiscountApplied {
		message += fmt.Sprintf(" 단골 할인 %d%%(%s원)이 적용되었습니다.",
			created.DiscountPercentage, eligibility.FormatWon(created.DiscountAmount))
	}
	return message
}
