package validator

import (
	"math"

	"github.com/go-playground/validator/v10"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
}

// lat/lng are separate rules instead of min/max tags so that zero values
// stay valid: (0,0) is a real place.
func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return false
	}
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lng >= -180.0 && lng <= 180.0
}
