package voice

import (
	"strings"

	"dinner-service/internal/entities"
)

const dinnerChampagneFeast = "champagne_feast"

type MenuItem struct {
	ID   int64
	Key  string
	Name string
}

type Portion struct {
	Item     MenuItem
	Quantity int
}

type Dinner struct {
	Key      string
	Name     string
	Defaults []Portion
}

var (
	wine          = MenuItem{ID: 1, Key: "wine", Name: "와인"}
	steak         = MenuItem{ID: 2, Key: "steak", Name: "스테이크"}
	coffee        = MenuItem{ID: 3, Key: "coffee", Name: "커피"}
	salad         = MenuItem{ID: 4, Key: "salad", Name: "샐러드"}
	scrambledEggs = MenuItem{ID: 5, Key: "scrambled_eggs", Name: "에그 스크램블"}
	bacon         = MenuItem{ID: 6, Key: "bacon", Name: "베이컨"}
	bread         = MenuItem{ID: 7, Key: "bread", Name: "빵"}
	champagne     = MenuItem{ID: 8, Key: "champagne", Name: "샴페인"}
	baguette      = MenuItem{ID: 9, Key: "baguette", Name: "바게트빵"}
	coffeePot     = MenuItem{ID: 10, Key: "coffee_pot", Name: "커피 포트"}
)

// Catalog статическое меню голосового заказа, id совпадают с таблицей inventory
type Catalog struct {
	dinners map[string]Dinner
	items   map[string]MenuItem
	aliases map[string]string
}

func NewCatalog() *Catalog {
	dinners := []Dinner{
		{
			Key:      "valentine",
			Name:     "발렌타인 디너",
			Defaults: []Portion{{wine, 1}, {steak, 1}},
		},
		{
			Key:      "french",
			Name:     "프렌치 디너",
			Defaults: []Portion{{coffee, 1}, {wine, 1}, {salad, 1}, {steak, 1}},
		},
		{
			Key:      "english",
			Name:     "잉글리시 디너",
			Defaults: []Portion{{scrambledEggs, 1}, {bacon, 1}, {bread, 1}, {steak, 1}},
		},
		{
			Key:      dinnerChampagneFeast,
			Name:     "샴페인 축제 디너",
			Defaults: []Portion{{champagne, 1}, {baguette, 4}, {coffeePot, 1}, {wine, 1}, {steak, 1}},
		},
	}

	c := &Catalog{
		dinners: make(map[string]Dinner, len(dinners)),
		items:   make(map[string]MenuItem),
		aliases: map[string]string{
			"발렌타인": "valentine",
			"프렌치":  "french",
			"프랑스":  "french",
			"잉글리시": "english",
			"영국":   "english",
			"샴페인":  dinnerChampagneFeast,
			"champagne": dinnerChampagneFeast,
		},
	}
	for _, d := range dinners {
		c.dinners[d.Key] = d
		for _, p := range d.Defaults {
			c.items[p.Item.Key] = p.Item
		}
	}
	return c
}

func (c *Catalog) Dinner(key string) (Dinner, bool) {
	d, ok := c.dinners[key]
	return d, ok
}

func (c *Catalog) Item(key string) (MenuItem, bool) {
	item, ok := c.items[key]
	return item, ok
}

func (c *Catalog) DinnerLabel(key string) string {
	if d, ok := c.dinners[key]; ok {
		return d.Name
	}
	return key
}

// NormalizeDinnerType "발렌타인 디너", "Valentine" -> valentine, неизвестное возвращается как есть
func (c *Catalog) NormalizeDinnerType(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := c.dinners[token]; ok {
		return token
	}
	for alias, key := range c.aliases {
		if strings.Contains(token, alias) {
			return key
		}
	}
	for key := range c.dinners {
		if strings.Contains(token, key) {
			return key
		}
	}
	return strings.TrimSpace(raw)
}

func NormalizeServingStyle(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(token, "simple"), strings.Contains(token, "심플"):
		return entities.StyleSimple.String()
	case strings.Contains(token, "grand"), strings.Contains(token, "그랜드"):
		return entities.StyleGrand.String()
	case strings.Contains(token, "deluxe"), strings.Contains(token, "디럭스"):
		return entities.StyleDeluxe.String()
	}
	return token
}

// NormalizeItemKey по ключу, английскому или корейскому названию
func (c *Catalog) NormalizeItemKey(raw string) (string, bool) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return "", false
	}
	token = strings.ReplaceAll(token, " ", "_")
	if _, ok := c.items[token]; ok {
		return token, true
	}

	compact := strings.ReplaceAll(token, "_", "")
	for key, item := range c.items {
		if compact == strings.ReplaceAll(item.Name, " ", "") || compact == strings.ReplaceAll(key, "_", "") {
			return key, true
		}
	}
	return "", false
}
