package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/database"
	"github.com/ardoise/menu-du-jour/models"
	"github.com/ardoise/menu-du-jour/utils"
)

// RestaurantStore handles the tenant root: lookup, design settings and
// first-time initialization.
type RestaurantStore struct {
	db *gorm.DB
}

func NewRestaurantStore(db *gorm.DB) *RestaurantStore {
	return &RestaurantStore{db: db}
}

// RestaurantIDForUser resolves the caller's restaurant from the users row.
// Nil means the account exists but is not linked to a restaurant yet.
func (s *RestaurantStore) RestaurantIDForUser(userID uint) (*uint, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return user.RestaurantID, nil
}

func (s *RestaurantStore) GetByID(id uint) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &r, nil
}

// GetBySlug is the public lookup used by the menu page and the PDF export.
func (s *RestaurantStore) GetBySlug(slug string) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.Where("slug = ?", slug).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &r, nil
}

// DesignUpdate carries the settings form. Nil fields are left untouched;
// empty strings clear a field back to its render-time fallback.
type DesignUpdate struct {
	Name           *string `json:"name"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	LogoURL        *string `json:"logo_url"`
	OpeningDays    *string `json:"opening_days"`
	OpeningDays2   *string `json:"opening_days_2"`
	LunchHours     *string `json:"lunch_hours"`
	DinnerHours    *string `json:"dinner_hours"`
	HolidayNotice  *string `json:"holiday_notice"`
	MeatOrigin     *string `json:"meat_origin"`
	PaymentNotice  *string `json:"payment_notice"`
	Subtitle       *string `json:"subtitle"`
	RestaurantType *string `json:"restaurant_type"`
	Cities         *string `json:"cities"`
	SidesNote      *string `json:"sides_note"`
}

func (s *RestaurantStore) UpdateDesign(restaurantID uint, u DesignUpdate) error {
	updates := map[string]interface{}{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	if u.Name != nil && *u.Name != "" {
		updates["name"] = *u.Name
	}
	set("address", u.Address)
	set("phone", u.Phone)
	set("logo_url", u.LogoURL)
	set("opening_days", u.OpeningDays)
	set("opening_days_2", u.OpeningDays2)
	set("lunch_hours", u.LunchHours)
	set("dinner_hours", u.DinnerHours)
	set("holiday_notice", u.HolidayNotice)
	set("meat_origin", u.MeatOrigin)
	set("payment_notice", u.PaymentNotice)
	set("subtitle", u.Subtitle)
	set("restaurant_type", u.RestaurantType)
	set("cities", u.Cities)
	set("sides_note", u.SidesNote)
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&models.Restaurant{}).
		Where("id = ?", restaurantID).
		Updates(updates).Error
}

// Initialize creates the caller's restaurant with a fresh unique slug,
// links the user as owner and seeds the default taxonomy and product list.
// A user whose restaurant already carries products gets
// ErrAlreadyInitialized; a restaurant that somehow lost its products is
// re-seeded.
func (s *RestaurantStore) Initialize(userID uint, name string) (*models.Restaurant, error) {
	if name == "" {
		name = "Mon Restaurant"
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	if user.RestaurantID != nil {
		var count int64
		if err := s.db.Model(&models.Product{}).
			Where("restaurant_id = ?", *user.RestaurantID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAlreadyInitialized
		}
		if err := database.SeedCatalog(s.db, *user.RestaurantID); err != nil {
			return nil, err
		}
		return s.GetByID(*user.RestaurantID)
	}

	var restaurant models.Restaurant
	err := s.db.Transaction(func(tx *gorm.DB) error {
		restaurant = models.Restaurant{
			Name: name,
			Slug: utils.GenerateSlug(name),
		}
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{"restaurant_id": restaurant.ID, "role": "owner"}).Error; err != nil {
			return err
		}
		return database.SeedCatalog(tx, restaurant.ID)
	})
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}
