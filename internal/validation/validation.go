// Package validation wraps go-playground/validator to turn request-struct
// constraint failures into a field→messages map, the shape both the API and
// its clients consume. Validation never panics; callers always get a result.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/models"
	"github.com/go-playground/validator/v10"
)

// loosePhone matches the permissive phone pattern used across every form:
// optional leading +, then at least 7 digits/spaces/dashes/parentheses.
var loosePhone = regexp.MustCompile(`^[+]?[0-9\s\-()]{7,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their JSON names so error maps line up with payloads.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("loosephone", func(fl validator.FieldLevel) bool {
		return loosePhone.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("validation: register loosephone: %v", err))
	}

	if err := v.RegisterValidation("missionstatus", func(fl validator.FieldLevel) bool {
		return models.ValidStatus(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("validation: register missionstatus: %v", err))
	}

	// Let numeric rules (gt, required) see dto.Number as a plain float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if n, ok := field.Interface().(dto.Number); ok {
			return float64(n)
		}
		return nil
	}, dto.Number(0))

	return v
}

// Struct validates s and returns a field→messages map, or nil when valid.
func Struct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string][]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			fields[fe.Field()] = append(fields[fe.Field()], message(fe))
		}
		return fields
	}
	fields[""] = []string{"Données invalides."}
	return fields
}

// message renders a French, user-facing message for one failed rule.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "clientId":
			return "Le client est requis."
		case "date":
			return "La date est requise."
		case "status":
			return "Le statut est requis."
		case "country":
			return "Le pays est requis."
		case "freelancerType":
			return "Le type de freelance est requis."
		case "currentPassword":
			return "Le mot de passe actuel est requis."
		case "amount":
			return "Le montant doit être un nombre."
		case "password":
			return "Le mot de passe est requis."
		}
		return "Ce champ est requis."
	case "email":
		return "Adresse e-mail invalide."
	case "min":
		switch fe.Field() {
		case "name":
			return "Le nom doit contenir au moins " + fe.Param() + " caractères."
		case "title":
			return "Le titre est requis (minimum " + fe.Param() + " caractères)."
		case "password", "newPassword":
			return "Le mot de passe doit contenir au moins " + fe.Param() + " caractères."
		}
		return "Doit contenir au moins " + fe.Param() + " caractères."
	case "gt":
		if fe.Field() == "amount" {
			return "Le montant doit être positif."
		}
		return "Doit être supérieur à " + fe.Param() + "."
	case "missionstatus":
		return "Le statut est invalide."
	case "loosephone":
		return "Numéro de téléphone invalide."
	}
	return fmt.Sprintf("Valeur invalide (%s).", fe.Tag())
}
