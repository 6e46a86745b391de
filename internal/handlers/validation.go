package handlers

import (
	"reflect"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	registerValidations(v)
}

// registerValidations teaches v about decimal amounts and the domain enums.
func registerValidations(v *validator.Validate) {
	// Numeric tags (gt, gte, lte) compare decimals as float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return domain.Currency(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("movementtype", func(fl validator.FieldLevel) bool {
		return domain.MovementType(fl.Field().String()).IsValid()
	})
}
