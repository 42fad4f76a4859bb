package services

import "valuation/models"

// Recompute derives every value of a valuation row from its inputs. No rounding is applied.
func Recompute(in models.ValuationInputs) models.ValuationRow {
	return models.ValuationRow{
		ValuationInputs:  in,
		GuidelineValue:   in.Area * in.GuidelineRate,
		MarketValue:      in.Area * in.UnitRate,
		ReplacementValue: in.Area * in.ReplacementCost,
	}
}

// LandValuationView values the land on the area considered by landDetails.
func LandValuationView(v models.LandValuation, areaConsidered float64) models.LandValuationView {
	row := Recompute(models.ValuationInputs{
		Area:          areaConsidered,
		GuidelineRate: v.GuidelineRate,
		UnitRate:      v.UnitRate,
	})
	return models.LandValuationView{
		AreaConsidered: areaConsidered,
		GuidelineRate:  v.GuidelineRate,
		GuidelineValue: row.GuidelineValue,
		UnitRate:       v.UnitRate,
		LandValue:      row.MarketValue,
	}
}

func FlatValuationView(v models.FlatValuation) models.FlatValuationView {
	row := Recompute(models.ValuationInputs{
		Area:            v.FlatSBUA,
		GuidelineRate:   v.GuidelineRate,
		UnitRate:        v.UnitRate,
		ReplacementCost: v.ReplacementCost,
	})
	return models.FlatValuationView{
		FlatValuation:    v,
		GuidelineValue:   row.GuidelineValue,
		FlatValue:        row.MarketValue,
		ReplacementValue: row.ReplacementValue,
	}
}

func BuildingValuationView(e models.BuildingValuationEntry) models.BuildingValuationView {
	return models.BuildingValuationView{
		Building:     e.Building,
		Floor:        e.Floor,
		Type:         e.Type,
		ValuationRow: Recompute(e.ValuationInputs),
	}
}

func EnquiryView(e models.Enquiry) models.EnquiryView {
	return models.EnquiryView{Enquiry: e, TotalValue: e.PerSqyd * e.PlotArea}
}
