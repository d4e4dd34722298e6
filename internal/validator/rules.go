package validator

import (
	"log"
	"regexp"

	"mentorhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Patterns mirror the signup form contracts: a generic phone shape with
// optional +, parens and separators, and per-network profile URL shapes.
var (
	phoneRegexp    = regexp.MustCompile(`^[\+]?[(]?[0-9]{3}[)]?[-\s\.]?[0-9]{3}[-\s\.]?[0-9]{4,6}$`)
	linkedinRegexp = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[\w-]+/?$`)
	githubRegexp   = regexp.MustCompile(`^https?://(www\.)?github\.com/[\w-]+/?$`)
	twitterRegexp  = regexp.MustCompile(`^https?://(www\.)?(twitter|x)\.com/[\w-]+/?$`)
	websiteRegexp  = regexp.MustCompile(`^https?://[\w-]+(\.[\w-]+)+(/[^\s]*)?$`)
)

// registerCustomRules installs all custom validation tags on the given
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup bug, not a
			// runtime condition.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("phone", validatePhone)
	mustRegister("linkedin-url", matchRule(linkedinRegexp))
	mustRegister("github-url", matchRule(githubRegexp))
	mustRegister("twitter-url", matchRule(twitterRegexp))
	mustRegister("website-url", matchRule(websiteRegexp))
	mustRegister("is-availability", validateAvailability)
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empties are handled by 'required'
	}
	return phoneRegexp.MatchString(value)
}

// matchRule builds a validator func from a regexp; empty values pass so the
// rules compose with 'required' and 'omitempty'.
func matchRule(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return re.MatchString(value)
	}
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Availability(value) {
	case models.AvailabilityAvailable, models.AvailabilityPartTime,
		models.AvailabilityFullTime, models.AvailabilityFlexible:
		return true
	default:
		return false
	}
}
