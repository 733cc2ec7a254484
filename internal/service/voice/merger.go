package voice

import (
	"slices"
	"strings"
	"time"

	"dinner-service/internal/entities"
)

const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15:04"
	dateTimeLayout = "2006-01-02T15:04"
)

var deliveryDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	dateTimeLayout,
	"2006-01-02 15:04",
	"2006.01.02 15:04",
}

var accumulateActions = []string{"add", "increase", "추가", "증가"}

// mergeState накладывает частичное состояние от ассистента на накопленное, current не меняется
func (c *Catalog) mergeState(current, patch entities.VoiceOrderState) entities.VoiceOrderState {
	merged := current
	merged.MenuAdjustments = slices.Clone(current.MenuAdjustments)

	if value, ok := nonBlank(patch.DinnerType); ok {
		dinner := c.NormalizeDinnerType(value)
		merged.DinnerType = &dinner
	}
	if value, ok := nonBlank(patch.ServingStyle); ok {
		style := NormalizeServingStyle(value)
		merged.ServingStyle = &style
	}

	for _, adjustment := range patch.MenuAdjustments {
		merged.MenuAdjustments = c.mergeAdjustment(merged.MenuAdjustments, adjustment)
	}

	mergeDelivery(&merged, patch)

	if value, ok := nonBlank(patch.DeliveryAddress); ok {
		address := strings.TrimSpace(value)
		merged.DeliveryAddress = &address
	}
	if patch.ContactPhone != nil {
		merged.ContactPhone = patch.ContactPhone
	}
	if patch.ContactName != nil {
		merged.ContactName = patch.ContactName
	}
	if patch.SpecialRequests != nil {
		merged.SpecialRequests = patch.SpecialRequests
	}
	if patch.ReadyForConfirmation != nil {
		merged.ReadyForConfirmation = patch.ReadyForConfirmation
	}
	if patch.FinalConfirmation != nil {
		merged.FinalConfirmation = patch.FinalConfirmation
	}
	if len(patch.NeedsMoreInfo) > 0 {
		merged.NeedsMoreInfo = slices.Clone(patch.NeedsMoreInfo)
	}

	return merged
}

func (c *Catalog) mergeAdjustment(adjustments []entities.VoiceOrderItem, patch entities.VoiceOrderItem) []entities.VoiceOrderItem {
	key := c.adjustmentKey(patch)
	if key == "" {
		return adjustments
	}

	idx := slices.IndexFunc(adjustments, func(item entities.VoiceOrderItem) bool {
		return item.Key != nil && *item.Key == key
	})

	quantity := patch.Quantity
	if isAccumulate(patch.Action) {
		add := 1
		if patch.Quantity != nil {
			add = *patch.Quantity
		}
		total := add
		if idx >= 0 && adjustments[idx].Quantity != nil {
			total += *adjustments[idx].Quantity
		}
		quantity = &total
	}

	item := entities.VoiceOrderItem{
		Key:      &key,
		Name:     patch.Name,
		Quantity: quantity,
		Action:   patch.Action,
	}
	if idx < 0 {
		return append(adjustments, item)
	}

	if item.Name == nil {
		item.Name = adjustments[idx].Name
	}
	adjustments[idx] = item
	return adjustments
}

// adjustmentKey ключ позиции, при пустом key берётся нормализованное имя
func (c *Catalog) adjustmentKey(item entities.VoiceOrderItem) string {
	for _, candidate := range []*string{item.Key, item.Name} {
		value, ok := nonBlank(candidate)
		if !ok {
			continue
		}
		if key, known := c.NormalizeItemKey(value); known {
			return key
		}
		return strings.ToLower(strings.TrimSpace(value))
	}
	return ""
}

func mergeDelivery(merged *entities.VoiceOrderState, patch entities.VoiceOrderState) {
	if value, ok := nonBlank(patch.DeliveryDateTime); ok {
		if parsed, parsedOK := parseDeliveryDateTime(value); parsedOK {
			date := parsed.Format(dateLayout)
			clock := parsed.Format(clockLayout)
			dateTime := parsed.Format(dateTimeLayout)
			merged.DeliveryDate = &date
			merged.DeliveryTime = &clock
			merged.DeliveryDateTime = &dateTime
			return
		}
	}

	if value, ok := nonBlank(patch.DeliveryDate); ok {
		date := strings.TrimSpace(value)
		merged.DeliveryDate = &date
	}
	if value, ok := nonBlank(patch.DeliveryTime); ok {
		clock := strings.TrimSpace(value)
		merged.DeliveryTime = &clock
	}
}

// parseDeliveryDateTime время без зоны, зона применяется при оформлении заказа
func parseDeliveryDateTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range deliveryDateTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func isAccumulate(action *string) bool {
	value, ok := nonBlank(action)
	if !ok {
		return false
	}
	value = strings.ToLower(value)
	for _, token := range accumulateActions {
		if strings.Contains(value, token) {
			return true
		}
	}
	return false
}

func nonBlank(value *string) (string, bool) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", false
	}
	return *value, true
}
