package model

import "strings"

// Category is one entry of the fixed category catalog. The catalog is
// read-only at runtime; Value is the stable identifier expenses refer to.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Categories returns the full category catalog in its canonical order.
func Categories() []Category {
	return []Category{
		{Value: "food", Label: "🍕 Food", Color: "#48bb78", Icon: "🍕"},
		{Value: "transport", Label: "🚗 Transport", Color: "#4299e1", Icon: "🚗"},
		{Value: "shopping", Label: "🛍️ Shopping", Color: "#ed8936", Icon: "🛍️"},
		{Value: "entertainment", Label: "🎬 Entertainment", Color: "#9f7aea", Icon: "🎬"},
		{Value: "bills", Label: "📄 Bills", Color: "#ecc94b", Icon: "📄"},
		{Value: "health", Label: "🏥 Health", Color: "#fc8181", Icon: "🏥"},
		{Value: "education", Label: "📚 Education", Color: "#38b2ac", Icon: "📚"},
		{Value: "travel", Label: "✈️ Travel", Color: "#ed64a6", Icon: "✈️"},
		{Value: "grocery", Label: "🛒 Grocery", Color: "#68d391", Icon: "🛒"},
		{Value: "investment", Label: "📈 Investment", Color: "#81e6d9", Icon: "📈"},
		{Value: "other", Label: "📦 Other", Color: "#a0aec0", Icon: "📦"},
	}
}

// Name returns the label without its icon prefix, e.g. "Food".
func (c Category) Name() string {
	if i := strings.IndexByte(c.Label, ' '); i >= 0 {
		return c.Label[i+1:]
	}
	return c.Label
}

// CategoryByValue looks up a catalog entry by its identifier.
func CategoryByValue(value string) (Category, bool) {
	for _, c := range Categories() {
		if c.Value == value {
			return c, true
		}
	}
	return Category{}, false
}

// ValidCategory reports whether value names a catalog entry.
func ValidCategory(value string) bool {
	_, ok := CategoryByValue(value)
	return ok
}
