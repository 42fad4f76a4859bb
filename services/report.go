package services

import (
	"time"

	"valuation/models"
)

// ValuationReport is the printable projection of a session. Sections that do not apply to
// the property type are left nil.
type ValuationReport struct {
	SessionID         string
	Basic             models.BasicInformation
	Location          models.LocationDetails
	PropertyDocs      []models.PropertyDocument
	Land              *models.LandDetailsView
	LandValuation     *models.LandValuationView
	Enquiries         []models.Row[models.EnquiryView]
	BuildingValuation []models.Row[models.BuildingValuationView]
	Flat              *models.FlatValuationView
	Comments          string
	GeneratedAt       time.Time
}

func (s *Session) Report() ValuationReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := ValuationReport{
		SessionID:    s.id,
		Basic:        s.basic,
		Location:     LocationView(s.location, s.basic.PropertyType),
		PropertyDocs: s.propertyDocs.Values(),
		Comments:     s.comments,
		GeneratedAt:  s.now(),
	}
	switch s.basic.PropertyType {
	case models.PropertyLandAndBuildings:
		land := LandDetailsView(s.landDetails)
		lv := LandValuationView(s.landValuation, land.AreaConsidered)
		r.Land = &land
		r.LandValuation = &lv
		r.Enquiries = models.MapKeyedList(s.enquiries, EnquiryView)
		r.BuildingValuation = models.MapKeyedList(s.buildingValuation, BuildingValuationView)
	case models.PropertyFlat:
		flat := FlatValuationView(s.flatValuation)
		r.Flat = &flat
	}
	return r
}

// Totals sums the market values the report prints at the bottom.
func (r ValuationReport) Totals() (guideline, market float64) {
	if r.LandValuation != nil {
		guideline += r.LandValuation.GuidelineValue
		market += r.LandValuation.LandValue
	}
	for _, row := range r.BuildingValuation {
		guideline += row.Value.GuidelineValue
		market += row.Value.MarketValue
	}
	if r.Flat != nil {
		guideline += r.Flat.GuidelineValue
		market += r.Flat.FlatValue
	}
	return guideline, market
}
