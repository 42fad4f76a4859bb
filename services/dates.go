package services

import (
	"strings"
	"time"

	"valuation/models"
)

const (
	DateLayout       = "2006-01-02"
	DateOrderMessage = "Date of Valuation must be greater than or equal to Date of Inspection"
)

// ValidateDates returns the date-ordering message when both dates parse and the valuation
// date precedes the inspection date, and "" otherwise.
func ValidateDates(inspection, valuation string) string {
	in, err := time.Parse(DateLayout, strings.TrimSpace(inspection))
	if err != nil {
		return ""
	}
	val, err := time.Parse(DateLayout, strings.TrimSpace(valuation))
	if err != nil {
		return ""
	}
	if val.Before(in) {
		return DateOrderMessage
	}
	return ""
}

func ParsePropertyType(s string) models.PropertyType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "land and buildings", "land_and_buildings", "land":
		return models.PropertyLandAndBuildings
	case "flat":
		return models.PropertyFlat
	}
	return ""
}

// SetBasicField updates basic information and re-checks the date order. The error never blocks input.
func SetBasicField(b models.BasicInformation, field, value string) (models.BasicInformation, error) {
	switch field {
	case "property_type":
		b.PropertyType = ParsePropertyType(value)
	case "inspection_date":
		b.InspectionDate = strings.TrimSpace(value)
	case "valuation_date":
		b.ValuationDate = strings.TrimSpace(value)
	default:
		return b, ErrUnknownField
	}
	b.DateError = ValidateDates(b.InspectionDate, b.ValuationDate)
	return b, nil
}
