// Package validation wires go-playground/validator for the user record and
// the request DTOs: json tag names in error reports, a phone rule, and the
// cross-field profile rules (expectedCTC vs currentCTC, conditional
// noticePeriodDays).
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Somye55/colbin-recruitment-platform/internal/models"
)

// FieldError is the per-field failure shape returned in 400 responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		must(v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRe.MatchString(fl.Field().String())
		}))
		v.RegisterStructValidation(registerRules, models.RegisterRequest{})
		v.RegisterStructValidation(updateRules, models.UpdateProfileRequest{})
		v.RegisterStructValidation(userRules, models.User{})
		validate = v
	})
	return validate
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate returns one FieldError per failed rule, or nil when s is valid.
func Validate(s any) []FieldError {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: "invalid input"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func registerRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.RegisterRequest)
	profileRules(sl, req.NoticePeriod, req.NoticePeriodDays, req.CurrentCTC, req.ExpectedCTC)
}

// updateRules only covers what the request alone can prove wrong. The
// conditional noticePeriodDays rule needs the stored record (a partial
// update may say "Yes" while the day count is already on file), so it runs
// on the merged User instead.
func updateRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.UpdateProfileRequest)
	if req.CurrentCTC != nil && req.ExpectedCTC != nil && *req.ExpectedCTC < *req.CurrentCTC {
		sl.ReportError(req.ExpectedCTC, "expectedCTC", "ExpectedCTC", "ctc_gte_current", "")
	}
}

func userRules(sl validator.StructLevel) {
	u := sl.Current().Interface().(models.User)
	profileRules(sl, u.NoticePeriod, u.NoticePeriodDays, u.CurrentCTC, u.ExpectedCTC)
}

// profileRules holds the two invariants that span fields: a notice period of
// "Yes" needs a day count, and the expected compensation may not drop below
// the current one. "No" with a day count present is accepted.
func profileRules(sl validator.StructLevel, notice string, days *int, current, expected *float64) {
	if notice == "Yes" && days == nil {
		sl.ReportError(days, "noticePeriodDays", "NoticePeriodDays", "required_with_notice", "")
	}
	if current != nil && expected != nil && *expected < *current {
		sl.ReportError(expected, "expectedCTC", "ExpectedCTC", "ctc_gte_current", "")
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return "must be a valid URL"
	case "phone":
		return "must be a valid phone number"
	case "ctc_gte_current":
		return "must be greater than or equal to currentCTC"
	case "required_with_notice":
		return "is required when noticePeriod is Yes"
	default:
		return "is invalid"
	}
}
