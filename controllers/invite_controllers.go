package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/models"
	"github.com/ardoise/menu-du-jour/store"
	"github.com/ardoise/menu-du-jour/utils"
)

type InviteController struct {
	DB          *gorm.DB
	Restaurants *store.RestaurantStore
}

func NewInviteController(db *gorm.DB) *InviteController {
	return &InviteController{
		DB:          db,
		Restaurants: store.NewRestaurantStore(db),
	}
}

// CreateInvite issues a single-use collaborator token for the caller's
// restaurant. Mail delivery is out of scope; the token comes back in the
// response.
func (ic *InviteController) CreateInvite(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, ic.Restaurants)
	if !ok {
		return
	}
	if role := c.GetString("role"); role != "owner" && role != "admin" {
		utils.RespondError(c, http.StatusForbidden, store.ErrNotAuthorized)
		return
	}

	var req struct {
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	role := req.Role
	if role == "" {
		role = "staff"
	}
	if role != "staff" && role != "owner" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("rôle invalide"))
		return
	}

	invite := models.Invite{
		RestaurantID: restaurantID,
		Token:        strings.ReplaceAll(uuid.NewString(), "-", ""),
		Role:         role,
		Email:        req.Email,
	}
	if err := ic.DB.Create(&invite).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Invitation créée", gin.H{
		"token": invite.Token,
		"email": invite.Email,
		"role":  invite.Role,
	})
}

// AcceptInvite consumes a token: it creates the account (or picks up an
// existing unlinked one by email) and links it to the invite's restaurant
// with the invite's role.
func (ic *InviteController) AcceptInvite(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var invite models.Invite
	if err := ic.DB.Where("token = ?", req.Token).First(&invite).Error; err != nil {
		respondStoreError(c, store.ErrInviteInvalid)
		return
	}
	if invite.UsedAt != nil {
		respondStoreError(c, store.ErrInviteInvalid)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var user models.User
	err = ic.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", invite.Email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				Name:         req.Name,
				Email:        invite.Email,
				Password:     string(hashed),
				Role:         invite.Role,
				RestaurantID: &invite.RestaurantID,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if user.RestaurantID != nil {
				return store.ErrInviteInvalid
			}
			if err := tx.Model(&user).Updates(map[string]interface{}{
				"restaurant_id": invite.RestaurantID,
				"role":          invite.Role,
			}).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		return tx.Model(&invite).Update("used_at", &now).Error
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, invite.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Invitation acceptée", gin.H{
		"token":         token,
		"restaurant_id": invite.RestaurantID,
	})
}
