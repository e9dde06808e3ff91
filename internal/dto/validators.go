package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// RegisterCustomValidators installs the dto-level binding validators on gin's
// default validator engine. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("dateonly", validDateOnly); err != nil {
		return err
	}
	return v.RegisterValidation("shifttype", validShiftType)
}

// validDateOnly accepts yyyy-mm-dd strings.
func validDateOnly(fl validator.FieldLevel) bool {
	_, err := time.ParseInLocation(DateLayout, fl.Field().String(), time.UTC)
	return err == nil
}

// validShiftType accepts the known shift categories.
func validShiftType(fl validator.FieldLevel) bool {
	switch domain.ShiftType(fl.Field().String()) {
	case domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftNight, domain.ShiftOff:
		return true
	}
	return false
}
