package menu

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func uintPtr(v uint) *uint {
	return &v
}

func TestBuildViewGroupsByDisplayOrder(t *testing.T) {
	view := BuildView(Input{
		RestaurantName: "Chez Marcel",
		Date:           "2024-01-15",
		ShowPrices:     true,
		Categories: []Category{
			{ID: 2, Name: "Plat", DisplayOrder: 1},
			{ID: 1, Name: "Entrée", DisplayOrder: 0},
		},
		Items: []Item{
			{Name: "Steak", Price: dec("18.50"), CategoryID: uintPtr(2)},
			{Name: "Soupe", Price: dec("6.00"), CategoryID: uintPtr(1)},
		},
	})

	assert.Len(t, view.Groups, 2)
	assert.Equal(t, "Entrées", view.Groups[0].Title)
	assert.Equal(t, "Plats", view.Groups[1].Title)
	assert.Equal(t, "Soupe", view.Groups[0].Items[0].Name)
	assert.Equal(t, "6,00 €", view.Groups[0].Items[0].PriceLabel)
	assert.Equal(t, "Steak", view.Groups[1].Items[0].Name)
	assert.Equal(t, "18,50 €", view.Groups[1].Items[0].PriceLabel)
}

func TestBuildViewItemOrderWithinCategory(t *testing.T) {
	view := BuildView(Input{
		Date:       "2024-01-15",
		ShowPrices: true,
		Categories: []Category{{ID: 1, Name: "Plat", DisplayOrder: 0}},
		Items: []Item{
			{Name: "B", CategoryID: uintPtr(1), DisplayOrder: 2},
			{Name: "A", CategoryID: uintPtr(1), DisplayOrder: 0},
			{Name: "C", CategoryID: uintPtr(1), DisplayOrder: 1},
		},
	})

	names := []string{}
	for _, it := range view.Groups[0].Items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"A", "C", "B"}, names)
}

func TestBuildViewCategoryTieBreakIsInsertionOrder(t *testing.T) {
	view := BuildView(Input{
		Date: "2024-01-15",
		Categories: []Category{
			{ID: 7, Name: "Première", DisplayOrder: 3},
			{ID: 8, Name: "Seconde", DisplayOrder: 3},
		},
		Items: []Item{
			{Name: "x", CategoryID: uintPtr(8)},
			{Name: "y", CategoryID: uintPtr(7)},
		},
	})

	assert.Equal(t, "Première", view.Groups[0].Title)
	assert.Equal(t, "Seconde", view.Groups[1].Title)
}

func TestBuildViewUncategorizedGoesToAutres(t *testing.T) {
	view := BuildView(Input{
		Date:       "2024-01-15",
		ShowPrices: true,
		Categories: []Category{
			{ID: 1, Name: "Entrée", DisplayOrder: 0},
			{ID: 2, Name: "Dessert", DisplayOrder: 9},
		},
		Items: []Item{
			{Name: "Mystère", CategoryID: nil},
			{Name: "Salade", CategoryID: uintPtr(1)},
			{Name: "Tarte", CategoryID: uintPtr(2)},
		},
	})

	// Autres always trails the named categories
	last := view.Groups[len(view.Groups)-1]
	assert.Equal(t, UncategorizedTitle, last.Title)
	assert.Equal(t, "Mystère", last.Items[0].Name)
	for _, g := range view.Groups[:len(view.Groups)-1] {
		for _, it := range g.Items {
			assert.NotEqual(t, "Mystère", it.Name)
		}
	}
}

func TestBuildViewDanglingCategoryTreatedAsUncategorized(t *testing.T) {
	// The item references a category missing from the supplied set, which
	// can happen since products and categories come from separate queries.
	view := BuildView(Input{
		Date:       "2024-01-15",
		Categories: []Category{{ID: 1, Name: "Plat", DisplayOrder: 0}},
		Items: []Item{
			{Name: "Orphelin", CategoryID: uintPtr(42)},
		},
	})

	assert.Len(t, view.Groups, 1)
	assert.Equal(t, UncategorizedTitle, view.Groups[0].Title)
}

func TestBuildViewBeverageLeadIn(t *testing.T) {
	view := BuildView(Input{
		Date:       "2024-01-15",
		ShowPrices: true,
		Categories: []Category{
			{ID: 1, Name: "Boisson", DisplayOrder: 0},
			{ID: 2, Name: "Entrée", DisplayOrder: 1},
		},
		Items: []Item{
			{Name: "Coupe de champagne", Price: dec("16.00"), CategoryID: uintPtr(1)},
			{Name: "Rosette", Price: dec("14.00"), CategoryID: uintPtr(2)},
		},
	})

	assert.Len(t, view.Beverages, 1)
	assert.Equal(t, "Coupe de champagne", view.Beverages[0].Name)
	// Boisson never appears as a main group
	for _, g := range view.Groups {
		assert.NotEqual(t, "Boisson", g.Title)
		assert.NotEqual(t, "Boissons", g.Title)
	}
}

func TestBuildViewBeverageMatchIsCaseInsensitivePlural(t *testing.T) {
	view := BuildView(Input{
		Date:       "2024-01-15",
		Categories: []Category{{ID: 1, Name: "BOISSONS", DisplayOrder: 0}},
		Items:      []Item{{Name: "Verre de rouge", CategoryID: uintPtr(1)}},
	})

	assert.Len(t, view.Beverages, 1)
	assert.Empty(t, view.Groups)
}

func TestBuildViewShowPricesFalseSuppressesAllPrices(t *testing.T) {
	view := BuildView(Input{
		Date:       "2024-01-15",
		ShowPrices: false,
		Categories: []Category{
			{ID: 1, Name: "Boisson", DisplayOrder: 0},
			{ID: 2, Name: "Plat", DisplayOrder: 1},
		},
		Items: []Item{
			{Name: "Champagne", Price: dec("16.00"), CategoryID: uintPtr(1)},
			{Name: "Steak", Price: dec("18.50"), CategoryID: uintPtr(2)},
			{Name: "Hors carte", Price: dec("99.00"), CategoryID: nil},
		},
	})

	for _, it := range view.Beverages {
		assert.Empty(t, it.PriceLabel)
	}
	for _, g := range view.Groups {
		for _, it := range g.Items {
			assert.Empty(t, it.PriceLabel)
		}
	}
}

func TestBuildViewNilPriceSuppressesCell(t *testing.T) {
	view := BuildView(Input{
		Date:       "2024-01-15",
		ShowPrices: true,
		Categories: []Category{{ID: 1, Name: "Plat", DisplayOrder: 0}},
		Items: []Item{
			{Name: "Plat du marché", Price: nil, CategoryID: uintPtr(1)},
		},
	})

	assert.Empty(t, view.Groups[0].Items[0].PriceLabel)
}

func TestBuildViewEmptyCategoriesAreSkipped(t *testing.T) {
	view := BuildView(Input{
		Date: "2024-01-15",
		Categories: []Category{
			{ID: 1, Name: "Entrée", DisplayOrder: 0},
			{ID: 2, Name: "Plat", DisplayOrder: 1},
		},
		Items: []Item{{Name: "Steak", CategoryID: uintPtr(2)}},
	})

	assert.Len(t, view.Groups, 1)
	assert.Equal(t, "Plats", view.Groups[0].Title)
}

func TestEffectivePriceCustomWins(t *testing.T) {
	custom := dec("12.00")
	base := dec("14.00")

	assert.Equal(t, custom, EffectivePrice(custom, base))
	assert.Equal(t, base, EffectivePrice(nil, base))
	assert.Nil(t, EffectivePrice(nil, nil))
}

func TestBuildViewDatesAreDeterministic(t *testing.T) {
	a := BuildView(Input{Date: "2024-01-15"})
	b := BuildView(Input{Date: "2024-01-15"})

	assert.Equal(t, "lundi 15 janvier", a.DateLong)
	assert.Equal(t, "15-janv.-24", a.DateCompact)
	assert.Equal(t, a.DateLong, b.DateLong)
	assert.Equal(t, a.DateCompact, b.DateCompact)
}

func TestDisplayTitleMapping(t *testing.T) {
	assert.Equal(t, "Entrées", DisplayTitle("Entrée"))
	assert.Equal(t, "Plats", DisplayTitle("Plat"))
	assert.Equal(t, "Fromages", DisplayTitle("Fromage"))
	assert.Equal(t, "Desserts", DisplayTitle("Dessert"))
	assert.Equal(t, "Suggestions", DisplayTitle("Suggestions"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "14,50 €", FormatPrice(decimal.RequireFromString("14.5")))
	assert.Equal(t, "180,00 €", FormatPrice(decimal.RequireFromString("180")))
	assert.Equal(t, "6,00 €", FormatPrice(decimal.RequireFromString("6.00")))
}

func TestDesignWithDefaults(t *testing.T) {
	d := Design{}.WithDefaults()

	assert.Equal(t, "du lundi au vendredi", d.OpeningDays)
	assert.Equal(t, "12h-14h", d.LunchHours)
	assert.Equal(t, "19h30-21h30", d.DinnerHours)
	assert.NotEmpty(t, d.MeatOrigin)
	assert.NotEmpty(t, d.PaymentNotice)
	assert.Equal(t, "Menu du jour", d.Subtitle)

	custom := Design{OpeningDays: "tous les jours"}.WithDefaults()
	assert.Equal(t, "tous les jours", custom.OpeningDays)
}
