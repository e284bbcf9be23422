// Package menu is the rendering engine: a pure transformation from a
// restaurant's design config, its category list and a day's selection to the
// ordered, priced item tree that both the screen view and the PDF draw from.
// Neither output adapter re-derives grouping or pricing on its own.
package menu

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ardoise/menu-du-jour/utils"
)

// DefaultBeverageCategory is the reserved category rendered as a lead-in
// section above the main menu, matched case-insensitively ("Boisson" or
// "Boissons").
const DefaultBeverageCategory = "Boisson"

// UncategorizedTitle is the trailing bucket for items without a category.
const UncategorizedTitle = "Autres"

// Design carries the restaurant's free-text boilerplate. Empty fields fall
// back to sensible defaults so a brand-new restaurant still prints a
// complete page.
type Design struct {
	OpeningDays   string
	OpeningDays2  string
	LunchHours    string
	DinnerHours   string
	HolidayNotice string
	MeatOrigin    string
	PaymentNotice string
	Subtitle      string
	Type          string
	Cities        string
	SidesNote     string
}

// WithDefaults fills the blank design fields that have a fallback.
func (d Design) WithDefaults() Design {
	if d.OpeningDays == "" {
		d.OpeningDays = "du lundi au vendredi"
	}
	if d.LunchHours == "" {
		d.LunchHours = "12h-14h"
	}
	if d.DinnerHours == "" {
		d.DinnerHours = "19h30-21h30"
	}
	if d.MeatOrigin == "" {
		d.MeatOrigin = "Le bœuf est d'origine allemande ou française le veau est hollandais."
	}
	if d.PaymentNotice == "" {
		d.PaymentNotice = "Devant la recrudescence des chèques impayés, nous vous prions de régler par " +
			"Carte Bleue, espèces ou tickets restaurant (article 40 décret 92-456 du 22/05/92)"
	}
	if d.Subtitle == "" {
		d.Subtitle = "Menu du jour"
	}
	return d
}

// Category is the engine's category input.
type Category struct {
	ID           uint
	Name         string
	DisplayOrder int
}

// Item is one selected product on the day's menu. Price is the effective
// price (custom override already resolved by the caller, or via
// EffectivePrice); nil means "price on request" and suppresses the cell.
type Item struct {
	Name         string
	Description  string
	Price        *decimal.Decimal
	PriceUnit    string
	CategoryID   *uint
	DisplayOrder int
}

// EffectivePrice resolves a day's price: the custom override wins over the
// product's base price.
func EffectivePrice(custom, base *decimal.Decimal) *decimal.Decimal {
	if custom != nil {
		return custom
	}
	return base
}

// Input is everything BuildView needs. No I/O happens past this point.
type Input struct {
	RestaurantName string
	Design         Design
	Date           string // YYYY-MM-DD
	Categories     []Category
	Items          []Item
	ShowPrices     bool
	IsPublished    bool
	// BeverageCategory overrides the reserved lead-in category name.
	// Empty means DefaultBeverageCategory.
	BeverageCategory string
}

// ViewItem is a rendered line. PriceLabel is empty when the menu hides
// prices or the item has none; adapters print it verbatim.
type ViewItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceLabel  string `json:"price,omitempty"`
}

// Group is one titled section of the menu.
type Group struct {
	Title string     `json:"title"`
	Items []ViewItem `json:"items"`
}

// View is the normalized render tree shared by the screen and PDF adapters.
type View struct {
	RestaurantName string     `json:"restaurant_name"`
	Design         Design     `json:"-"`
	Date           string     `json:"date"`
	DateLong       string     `json:"date_long"`
	DateCompact    string     `json:"date_compact"`
	IsPublished    bool       `json:"is_published"`
	ShowPrices     bool       `json:"show_prices"`
	Beverages      []ViewItem `json:"beverages,omitempty"`
	Groups         []Group    `json:"groups"`
}

func isBeverage(name, reserved string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	r := strings.ToLower(reserved)
	return n == r || n == r+"s"
}

// BuildView groups, orders and prices the day's selection.
//
// Category order follows display_order ascending, insertion order breaking
// ties. The reserved beverage category becomes the lead-in section; items
// whose category is missing from the supplied set land in the trailing
// "Autres" bucket alongside truly uncategorized ones.
func BuildView(in Input) View {
	design := in.Design.WithDefaults()
	reserved := in.BeverageCategory
	if reserved == "" {
		reserved = DefaultBeverageCategory
	}

	// Stable sort keeps insertion order for equal display_order values.
	cats := make([]Category, len(in.Categories))
	copy(cats, in.Categories)
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].DisplayOrder < cats[j].DisplayOrder
	})

	known := make(map[uint]bool, len(cats))
	for _, c := range cats {
		known[c.ID] = true
	}

	byCategory := make(map[uint][]Item)
	var uncategorized []Item
	for _, it := range in.Items {
		if it.CategoryID == nil || !known[*it.CategoryID] {
			uncategorized = append(uncategorized, it)
			continue
		}
		byCategory[*it.CategoryID] = append(byCategory[*it.CategoryID], it)
	}

	render := func(items []Item) []ViewItem {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DisplayOrder < items[j].DisplayOrder
		})
		out := make([]ViewItem, 0, len(items))
		for _, it := range items {
			vi := ViewItem{Name: it.Name, Description: it.Description}
			if in.ShowPrices && it.Price != nil {
				vi.PriceLabel = FormatPrice(*it.Price)
			}
			out = append(out, vi)
		}
		return out
	}

	view := View{
		RestaurantName: in.RestaurantName,
		Design:         design,
		Date:           in.Date,
		DateLong:       utils.FormatDateLong(in.Date),
		DateCompact:    utils.FormatDateCompact(in.Date),
		IsPublished:    in.IsPublished,
		ShowPrices:     in.ShowPrices,
	}

	for _, c := range cats {
		items := byCategory[c.ID]
		if len(items) == 0 {
			continue
		}
		if isBeverage(c.Name, reserved) {
			view.Beverages = append(view.Beverages, render(items)...)
			continue
		}
		view.Groups = append(view.Groups, Group{
			Title: DisplayTitle(c.Name),
			Items: render(items),
		})
	}

	if len(uncategorized) > 0 {
		view.Groups = append(view.Groups, Group{
			Title: UncategorizedTitle,
			Items: render(uncategorized),
		})
	}

	return view
}
