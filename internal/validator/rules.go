package validator

import (
	"log"

	"worknest_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs domain validation tags on the validator
// instance. Registration failure is a startup defect.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-account-role", validateAccountRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-interview-status", validateInterviewStatus)
	mustRegister("is-gender", validateGender)
}

func validateAccountRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is left to 'required'
	}
	return models.AccountRole(value).Valid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ApplicationStatus(value).Valid()
}

func validateInterviewStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.InterviewStatus(value).Valid()
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Gender(value) {
	case models.GenderMale, models.GenderFemale, models.GenderOther, models.GenderUndisclosed:
		return true
	default:
		return false
	}
}
