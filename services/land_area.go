package services

import (
	"math"
	"strings"

	"valuation/models"
)

// ResolveLandArea picks the gross extent named by GrossSource, subtracts the deductions the
// affected type calls for and floors the result at zero. An extent that was never entered
// counts as zero. Negative inputs are not rejected; only the final area is clamped.
func ResolveLandArea(in models.LandAreaInputs) models.LandAreaResult {
	var gross float64
	switch in.GrossSource {
	case models.GrossDocumented:
		gross = in.Documented
	case models.GrossPlanned:
		gross = in.Planned
	case models.GrossActual:
		gross = in.Actual
	}

	var deductions float64
	if in.AffectedType == models.AffectedRoad || in.AffectedType == models.AffectedBoth {
		deductions += in.RoadAffected
	}
	if in.AffectedType == models.AffectedNala || in.AffectedType == models.AffectedBoth {
		deductions += in.NalaAffected
	}

	net := math.Max(0, gross-deductions)
	return models.LandAreaResult{NetArea: net, AreaConsidered: net}
}

// ParseGrossSource accepts the source names and the A/B/C letters of the printed form.
// Anything else resolves to no source, which yields a zero gross area.
func ParseGrossSource(s string) models.GrossSource {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "documented", "documents":
		return models.GrossDocumented
	case "b", "planned", "plan":
		return models.GrossPlanned
	case "c", "actual":
		return models.GrossActual
	}
	return ""
}

func ParseAffectedType(s string) models.AffectedType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "road":
		return models.AffectedRoad
	case "nala":
		return models.AffectedNala
	case "both":
		return models.AffectedBoth
	}
	return models.AffectedNone
}

// DefaultLandDetails mirrors the blank land section: documents as source, road deductions, square yards.
func DefaultLandDetails() models.LandDetails {
	return models.LandDetails{
		LandAreaInputs: models.LandAreaInputs{
			GrossSource:  models.GrossDocumented,
			AffectedType: models.AffectedRoad,
		},
		Units: "SqYds",
	}
}

func LandDetailsView(d models.LandDetails) models.LandDetailsView {
	return models.LandDetailsView{LandDetails: d, LandAreaResult: ResolveLandArea(d.LandAreaInputs)}
}
