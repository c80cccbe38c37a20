package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
)

// French postal codes, Corsica (2A/2B) included.
var postalCodeRegex = regexp.MustCompile(`^(?:[0-9]{5}|2[AB][0-9]{3})$`)

func postalCodeValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return postalCodeRegex.MatchString(val)
}

func propertyTypeValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch estimation.PropertyType(val) {
	case estimation.PropertyTypeApartment,
		estimation.PropertyTypeHouse,
		estimation.PropertyTypeVilla,
		estimation.PropertyTypeLoft,
		estimation.PropertyTypeStudio,
		estimation.PropertyTypeBuilding,
		estimation.PropertyTypeCommercial,
		estimation.PropertyTypeOffice,
		estimation.PropertyTypeWarehouse,
		estimation.PropertyTypeLand,
		estimation.PropertyTypeOther:
		return true
	default:
		return false
	}
}

func finishLevelValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return estimation.FinishLevel(val).Valid()
}

// lotTypeValidator accepts the lot types of cat.
func lotTypeValidator(cat *catalog.Catalog) func(fl validator.FieldLevel) bool {
	return func(fl validator.FieldLevel) bool {
		val, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return cat.Has(catalog.LotType(val))
	}
}

// rangeValidator is set on the Max field of a range and checks it against the Min sibling.
func rangeValidator(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	minField := parent.FieldByName("Min")
	if !minField.IsValid() || !minField.CanFloat() || !fl.Field().CanFloat() {
		return false
	}
	return fl.Field().Float() >= minField.Float()
}
