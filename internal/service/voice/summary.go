package voice

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"dinner-service/internal/entities"
)

const (
	missingDinner   = "디너 선택"
	missingStyle    = "서빙 스타일"
	missingDelivery = "배달 날짜/시간"
	missingAddress  = "배달 주소"
	missingPhone    = "연락처(전화번호)"
)

var portionPattern = regexp.MustCompile(`(\d+)\s*(?:인분|명분)`)

type summaryLine struct {
	key      string
	name     string
	quantity int
}

// buildSummary сводка сессии: дефолты ужина, множитель порций, затем правки ассистента
func (c *Catalog) buildSummary(session entities.VoiceSession) entities.VoiceSummary {
	state := session.State
	dinnerKey := deref(state.DinnerType)

	lines := c.applyAdjustments(c.defaultLines(dinnerKey, portionMultiplier(state)), state.MenuAdjustments)

	items := make([]entities.VoiceSummaryItem, 0, len(lines))
	for _, line := range lines {
		if line.quantity <= 0 {
			continue
		}
		items = append(items, entities.VoiceSummaryItem{Key: line.key, Name: line.name, Quantity: line.quantity})
	}

	summary := entities.VoiceSummary{
		DinnerName:        c.DinnerLabel(dinnerKey),
		ServingStyle:      styleLabel(deref(state.ServingStyle)),
		Items:             items,
		DeliverySlot:      deliverySlot(state),
		DeliveryAddress:   deref(state.DeliveryAddress),
		ContactPhone:      contactPhone(session),
		SpecialRequests:   deref(state.SpecialRequests),
		FinalConfirmation: state.FinalConfirmation,
		MissingFields:     missingFields(session),
	}

	if session.OrderPlaced {
		summary.OrderID = session.OrderID
		summary.TotalPrice = session.TotalPrice
		return summary
	}

	summary.ReadyForConfirmation = len(summary.MissingFields) == 0 && len(items) > 0
	return summary
}

func (c *Catalog) defaultLines(dinnerKey string, multiplier int) []summaryLine {
	dinner, ok := c.Dinner(dinnerKey)
	if !ok {
		return nil
	}

	lines := make([]summaryLine, 0, len(dinner.Defaults))
	for _, portion := range dinner.Defaults {
		lines = append(lines, summaryLine{
			key:      portion.Item.Key,
			name:     portion.Item.Name,
			quantity: portion.Quantity * multiplier,
		})
	}
	return lines
}

func (c *Catalog) applyAdjustments(lines []summaryLine, adjustments []entities.VoiceOrderItem) []summaryLine {
	for _, adjustment := range adjustments {
		if adjustment.Key == nil || adjustment.Quantity == nil {
			continue
		}
		// "2인분" это множитель порций, а не позиция меню
		if name := deref(adjustment.Name); strings.Contains(name, "인분") || strings.Contains(name, "명분") {
			continue
		}

		key := *adjustment.Key
		quantity := *adjustment.Quantity
		idx := slices.IndexFunc(lines, func(line summaryLine) bool { return line.key == key })

		if quantity <= 0 {
			if idx >= 0 {
				lines = slices.Delete(lines, idx, idx+1)
			}
			continue
		}

		if idx < 0 {
			lines = append(lines, summaryLine{key: key, name: c.itemLabel(key, adjustment.Name)})
			idx = len(lines) - 1
		}
		if isAccumulate(adjustment.Action) {
			lines[idx].quantity += quantity
		} else {
			lines[idx].quantity = quantity
		}
		if name, ok := nonBlank(adjustment.Name); ok {
			lines[idx].name = strings.TrimSpace(name)
		}
	}
	return lines
}

func (c *Catalog) itemLabel(key string, name *string) string {
	if value, ok := nonBlank(name); ok {
		return strings.TrimSpace(value)
	}
	if item, ok := c.Item(key); ok {
		return item.Name
	}
	return key
}

// portionMultiplier максимум "N인분" по особым пожеланиям и именам позиций, минимум 1
func portionMultiplier(state entities.VoiceOrderState) int {
	multiplier := 1

	candidates := []string{deref(state.SpecialRequests)}
	for _, adjustment := range state.MenuAdjustments {
		candidates = append(candidates, deref(adjustment.Name))
	}

	for _, text := range candidates {
		match := portionPattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if n, err := strconv.Atoi(match[1]); err == nil && n > multiplier {
			multiplier = n
		}
	}
	return multiplier
}

func missingFields(session entities.VoiceSession) []string {
	state := session.State
	missing := make([]string, 0)

	if _, ok := nonBlank(state.DinnerType); !ok {
		missing = append(missing, missingDinner)
	}
	if _, ok := nonBlank(state.ServingStyle); !ok {
		missing = append(missing, missingStyle)
	}
	if deliverySlot(state) == "" {
		missing = append(missing, missingDelivery)
	}
	if _, ok := nonBlank(state.DeliveryAddress); !ok {
		missing = append(missing, missingAddress)
	}
	if contactPhone(session) == "" {
		missing = append(missing, missingPhone)
	}
	return missing
}

func deliverySlot(state entities.VoiceOrderState) string {
	date, hasDate := nonBlank(state.DeliveryDate)
	clock, hasClock := nonBlank(state.DeliveryTime)
	if hasDate && hasClock {
		return strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	}
	if dateTime, ok := nonBlank(state.DeliveryDateTime); ok {
		return strings.TrimSpace(dateTime)
	}
	return ""
}

func contactPhone(session entities.VoiceSession) string {
	if phone, ok := nonBlank(session.State.ContactPhone); ok {
		return strings.TrimSpace(phone)
	}
	return strings.TrimSpace(session.CustomerPhone)
}

func styleLabel(raw string) string {
	style, err := entities.ParseServingStyle(raw)
	if err != nil {
		return raw
	}
	return style.Label()
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
