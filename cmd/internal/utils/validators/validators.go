package validators

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var hasSpaces = regexp.MustCompile(`\s+`)

// New returns a validator with all custom validations of the API registered.
func New() *validator.Validate {
	validate := validator.New()
	register(validate)
	return validate
}

func register(validate *validator.Validate) {
	_ = validate.RegisterValidation("nospaces", NoWhiteSpaces)
	_ = validate.RegisterValidation("nodupes", NoDupes)
}

// NoWhiteSpaces fails on strings with any whitespace. A snapshot numero with
// spaces could never be requested by path, so the snapshot is refused.
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}

// NoDupes fails on slices holding the same value twice, like a CORS origin
// listed twice in the config.
func NoDupes(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'nodupes' applied to non-slice type: %s\n", slice.Kind().String())
		return false
	}

	length := slice.Len()
	seen := make(map[any]bool, length)
	for i := 0; i < length; i++ {
		val := slice.Index(i).Interface()
		if _, exists := seen[val]; exists {
			return false
		}
		seen[val] = true
	}
	return true
}
