package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ardoise/menu-du-jour/store"
	"github.com/ardoise/menu-du-jour/utils"
)

// uintParam parses a numeric path parameter, responding 400 on garbage.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("paramètre %s invalide", name))
		return 0, false
	}
	return uint(v), true
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// requireRestaurant resolves the caller's restaurant server-side from the
// users table. Client-supplied restaurant ids are never trusted for writes.
// Responds 401 and returns false when the session is missing or the account
// has no restaurant yet.
func requireRestaurant(c *gin.Context, restaurants *store.RestaurantStore) (uint, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, store.ErrNotAuthenticated)
		return 0, false
	}
	restaurantID, err := restaurants.RestaurantIDForUser(userID)
	if err != nil {
		respondStoreError(c, err)
		return 0, false
	}
	if restaurantID == nil {
		utils.RespondError(c, http.StatusUnauthorized, store.ErrNotAuthenticated)
		return 0, false
	}
	return *restaurantID, true
}

// respondStoreError maps store sentinels onto HTTP statuses. Unknown errors
// are logged in full and surfaced as a generic message so internal detail
// never reaches the public surface.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotAuthenticated):
		utils.RespondError(c, http.StatusUnauthorized, err)
	case errors.Is(err, store.ErrNotAuthorized):
		utils.RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, store.ErrRestaurantNotFound),
		errors.Is(err, store.ErrProductNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, store.ErrSourceMenuEmpty),
		errors.Is(err, store.ErrAlreadyInitialized),
		errors.Is(err, store.ErrInviteInvalid):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.ErrorLogger.Printf("store error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("erreur lors du traitement de la demande"))
	}
}
