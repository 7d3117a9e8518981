package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Register installs the custom tags on gin's validator:
//
//	ymd   calendar date "YYYY-MM-DD"
//	hhmm  zero-padded "HH:MM" within a day
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("ymd", validateYMD); err != nil {
		return err
	}
	return v.RegisterValidation("hhmm", validateHHMM)
}

func validateYMD(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

func validateHHMM(fl validator.FieldLevel) bool {
	return IsHHMM(fl.Field().String())
}

func IsHHMM(s string) bool {
	m, err := domain.ParseHM(s)
	return err == nil && m < 24*60
}

var std = validator.New()

// IsEmail checks the syntax of an address.
func IsEmail(s string) bool {
	return std.Var(s, "required,email") == nil
}
