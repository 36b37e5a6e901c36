package usecase

import (
	"regexp"

	"soa-bango-backend/pkg/apperror"
)

// Identity groups the sender identity and the owner inbox shared by every
// notification flow. Constructed once in main from config.
type Identity struct {
	FromEmail  string
	FromName   string
	OwnerEmail string
}

// Permissive email check, deliberately not full RFC validation: non-blank
// local part, "@", non-blank domain with at least one dot.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User-facing French copy. Dispatch failures never leak transport details;
// the underlying error is logged server-side only.
const (
	msgMissingFields  = "Veuillez remplir tous les champs obligatoires"
	msgInvalidEmail   = "Adresse email invalide"
	msgEmailRequired  = "Email requis"
	msgContactFailed  = "Une erreur s'est produite. Veuillez réessayer plus tard."
	msgOrderFailed    = "Une erreur s'est produite. Veuillez réessayer."
	msgSignupFailed   = "Erreur lors de l'inscription"
	MsgContactSuccess = "Votre message a été envoyé avec succès ! Nous vous répondrons bientôt."
	MsgOrderSuccess   = "Votre commande a été enregistrée ! Nous vous contacterons bientôt."
	MsgSignupSuccess  = "Merci de vous être inscrit à notre newsletter !"
)

func invalidEmail(addr string) *apperror.AppError {
	if !emailRegex.MatchString(addr) {
		return apperror.BadRequest(msgInvalidEmail)
	}
	return nil
}
