package v1

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// bindErrorMessage maps a gin binding error to the user-facing French copy.
// A failed email tag gets its own message; everything else (missing fields,
// malformed JSON) gets the generic required-fields one.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "email" {
				return "Adresse email invalide"
			}
		}
	}
	return "Veuillez remplir tous les champs obligatoires"
}
