package store

import "errors"

// Expected business outcomes are sentinel errors; controllers map them to
// HTTP statuses. Messages are the user-facing French strings.
var (
	ErrNotAuthenticated   = errors.New("non authentifié")
	ErrNotAuthorized      = errors.New("non autorisé")
	ErrRestaurantNotFound = errors.New("restaurant non trouvé")
	ErrProductNotFound    = errors.New("produit introuvable")
	ErrSourceMenuEmpty    = errors.New("le menu source est vide")
	ErrAlreadyInitialized = errors.New("restaurant déjà initialisé")
	ErrInviteInvalid      = errors.New("invitation invalide ou déjà utilisée")
)
