package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/models"
	"github.com/ardoise/menu-du-jour/utils"
)

// MenuStore persists daily menus. A menu row exists only once a selection
// has been saved for its date; viewing never creates one.
type MenuStore struct {
	db *gorm.DB
}

func NewMenuStore(db *gorm.DB) *MenuStore {
	return &MenuStore{db: db}
}

// GetMenu loads the menu for (restaurant, date) with its items ordered by
// display_order. A missing menu is a valid state and returns (nil, nil).
func (s *MenuStore) GetMenu(restaurantID uint, date string) (*models.DailyMenu, error) {
	var m models.DailyMenu
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc, id asc")
		}).
		Preload("Items.Product").
		Where("restaurant_id = ? AND date = ?", restaurantID, date).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveOptions carries the optional per-save flags.
type SaveOptions struct {
	ShowPrices *bool
}

// SaveMenu replaces the full item set for (restaurant, date) in one
// transaction: existing items are deleted and the new selection inserted,
// one item per product id with its display order (0 when absent). The menu
// row is created on first save with is_published=false and show_prices
// defaulting to true. Saving the same arguments twice yields the same
// item set.
func (s *MenuStore) SaveMenu(restaurantID uint, date string, productIDs []uint, orders map[uint]int, opts SaveOptions) (uint, error) {
	var menuID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m models.DailyMenu
		err := tx.Where("restaurant_id = ? AND date = ?", restaurantID, date).First(&m).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			m = models.DailyMenu{
				RestaurantID: restaurantID,
				Date:         date,
				IsPublished:  false,
				ShowPrices:   true,
			}
			if opts.ShowPrices != nil {
				m.ShowPrices = *opts.ShowPrices
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Where("daily_menu_id = ?", m.ID).Delete(&models.DailyMenuItem{}).Error; err != nil {
				return err
			}
			if opts.ShowPrices != nil {
				if err := tx.Model(&m).Update("show_prices", *opts.ShowPrices).Error; err != nil {
					return err
				}
			}
		}
		menuID = m.ID

		if len(productIDs) == 0 {
			return nil
		}
		items := make([]models.DailyMenuItem, 0, len(productIDs))
		for _, pid := range productIDs {
			items = append(items, models.DailyMenuItem{
				DailyMenuID:  m.ID,
				ProductID:    pid,
				DisplayOrder: orders[pid],
			})
		}
		return tx.Create(&items).Error
	})

	return menuID, err
}

// SetPublished flips the publish flag. A date with no menu is a no-op
// treated as success (the update touches zero rows).
func (s *MenuStore) SetPublished(restaurantID uint, date string, publish bool) error {
	return s.db.Model(&models.DailyMenu{}).
		Where("restaurant_id = ? AND date = ?", restaurantID, date).
		Update("is_published", publish).Error
}

// SetShowPrices flips the show_prices flag, same update-only semantics as
// SetPublished.
func (s *MenuStore) SetShowPrices(restaurantID uint, date string, show bool) error {
	return s.db.Model(&models.DailyMenu{}).
		Where("restaurant_id = ? AND date = ?", restaurantID, date).
		Update("show_prices", show).Error
}

// DuplicateResult reports how a duplication attempt ended.
type DuplicateResult struct {
	NeedsConfirmation bool `json:"needs_confirmation"`
	ItemsCopied       int  `json:"items_copied"`
}

// Duplicate copies the source date's items onto the target date. When the
// target already holds at least one item the caller must confirm the
// overwrite first; until then nothing is mutated. The target's publish and
// show_prices flags are never changed, so duplicating into a draft never
// silently publishes it.
func (s *MenuStore) Duplicate(restaurantID uint, sourceDate, targetDate string, confirmOverwrite bool) (DuplicateResult, error) {
	source, err := s.GetMenu(restaurantID, sourceDate)
	if err != nil {
		return DuplicateResult{}, err
	}
	if source == nil || len(source.Items) == 0 {
		return DuplicateResult{}, ErrSourceMenuEmpty
	}

	target, err := s.GetMenu(restaurantID, targetDate)
	if err != nil {
		return DuplicateResult{}, err
	}
	if target != nil && len(target.Items) > 0 && !confirmOverwrite {
		return DuplicateResult{NeedsConfirmation: true}, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		m := target
		if m == nil {
			created := models.DailyMenu{
				RestaurantID: restaurantID,
				Date:         targetDate,
				IsPublished:  false,
				ShowPrices:   true,
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			m = &created
		} else if err := tx.Where("daily_menu_id = ?", m.ID).Delete(&models.DailyMenuItem{}).Error; err != nil {
			return err
		}

		items := make([]models.DailyMenuItem, 0, len(source.Items))
		for _, it := range source.Items {
			items = append(items, models.DailyMenuItem{
				DailyMenuID:  m.ID,
				ProductID:    it.ProductID,
				DisplayOrder: it.DisplayOrder,
				CustomPrice:  it.CustomPrice,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return DuplicateResult{}, err
	}

	return DuplicateResult{ItemsCopied: len(source.Items)}, nil
}

// DashboardStats is the read-only aggregate shown on the dashboard,
// computed over server-side today at call time.
type DashboardStats struct {
	TotalProducts  int64 `json:"total_products"`
	ActiveProducts int64 `json:"active_products"`
	TodayItemCount int64 `json:"today_item_count"`
	TodayPublished bool  `json:"today_published"`
	HasMenu        bool  `json:"has_menu"`
}

func (s *MenuStore) DashboardStats(restaurantID uint) (DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.Product{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&stats.TotalProducts).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.Product{}).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Count(&stats.ActiveProducts).Error; err != nil {
		return stats, err
	}

	today := utils.TodayString()
	var m models.DailyMenu
	err := s.db.Where("restaurant_id = ? AND date = ?", restaurantID, today).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stats, nil
	}
	if err != nil {
		return stats, err
	}

	stats.HasMenu = true
	stats.TodayPublished = m.IsPublished
	err = s.db.Model(&models.DailyMenuItem{}).
		Where("daily_menu_id = ?", m.ID).
		Count(&stats.TodayItemCount).Error
	return stats, err
}
