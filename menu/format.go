package menu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// displayTitles maps the singular taxonomy names to the plural section
// titles shown on the menu. Unmapped names pass through unchanged.
var displayTitles = map[string]string{
	"Entrée":  "Entrées",
	"Plat":    "Plats",
	"Fromage": "Fromages",
	"Dessert": "Desserts",
}

// DisplayTitle returns the section title for a category name.
func DisplayTitle(name string) string {
	if title, ok := displayTitles[name]; ok {
		return title
	}
	return name
}

// FormatPrice renders a price French style with two decimals: "14,50 €".
// PER_PERSON prices render the same; the unit is a label, never a multiplier.
func FormatPrice(price decimal.Decimal) string {
	return strings.Replace(price.StringFixed(2), ".", ",", 1) + " €"
}
