package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Valuation"

// BuildValuationWorkbook lays the report out as label/value rows on a single sheet.
func BuildValuationWorkbook(r ValuationReport) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Family: "Arial", Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Family: "Arial"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("amount style: %w", err)
	}

	row := 1
	set := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(summarySheet, cell, v)
	}
	header := func(title string) {
		row++
		set(1, title)
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), headerStyle)
		row++
	}
	pair := func(label string, v any) {
		set(1, label)
		set(2, v)
		if _, ok := v.(float64); ok {
			f.SetCellStyle(summarySheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), amountStyle)
		}
		row++
	}

	set(1, "Property Valuation Report")
	f.SetCellStyle(summarySheet, "A1", "F1", titleStyle)
	row++
	pair("Reference", r.SessionID)
	pair("Generated", r.GeneratedAt.Format("2006-01-02 15:04"))

	header("Basic Information")
	pair("Property Type", string(r.Basic.PropertyType))
	pair("Date of Inspection", r.Basic.InspectionDate)
	pair("Date of Valuation", r.Basic.ValuationDate)

	header("Location")
	sel := r.Location.Selection
	pair("State", sel.State)
	pair("District", sel.District)
	pair("Mandal", sel.Mandal)
	pair("Village", sel.Village)
	pair("Sy. Nos", r.Location.SyNos)
	pair("Plot No", r.Location.PlotNo)
	pair("Pincode", r.Location.Pincode)

	if r.Land != nil {
		header("Land Details")
		pair("Documented", r.Land.Documented)
		pair("Planned", r.Land.Planned)
		pair("Actual", r.Land.Actual)
		pair("Road Affected", r.Land.RoadAffected)
		pair("Nala Affected", r.Land.NalaAffected)
		pair("Net Area", r.Land.NetArea)
		pair("Area Considered", r.Land.AreaConsidered)
	}
	if r.LandValuation != nil {
		header("Land Valuation")
		pair("Guideline Rate", r.LandValuation.GuidelineRate)
		pair("Guideline Value", r.LandValuation.GuidelineValue)
		pair("Unit Rate", r.LandValuation.UnitRate)
		pair("Land Value", r.LandValuation.LandValue)
	}
	if len(r.BuildingValuation) > 0 {
		header("Building Valuation")
		for col, h := range []string{"Building", "Floor", "Area", "Guideline Value", "Market Value", "Replacement Value"} {
			set(col+1, h)
		}
		row++
		for _, b := range r.BuildingValuation {
			v := b.Value
			for col, cellValue := range []any{v.Building, v.Floor, v.Area, v.GuidelineValue, v.MarketValue, v.ReplacementValue} {
				set(col+1, cellValue)
			}
			f.SetCellStyle(summarySheet, fmt.Sprintf("C%d", row), fmt.Sprintf("F%d", row), amountStyle)
			row++
		}
	}
	if r.Flat != nil {
		header("Flat Valuation")
		pair("Flat SBUA", r.Flat.FlatSBUA)
		pair("Carpet Area", r.Flat.CarpetArea)
		pair("UDS", r.Flat.FlatUDS)
		pair("Total Land Area", r.Flat.TotalLandArea)
		pair("Guideline Value", r.Flat.GuidelineValue)
		pair("Flat Value", r.Flat.FlatValue)
		pair("Replacement Value", r.Flat.ReplacementValue)
	}
	if len(r.Enquiries) > 0 {
		header("Market Enquiries")
		for i, e := range r.Enquiries {
			pair(fmt.Sprintf("Enquiry %d", i+1), e.Value.TotalValue)
		}
	}

	guideline, market := r.Totals()
	header("Totals")
	pair("Total Guideline Value", guideline)
	pair("Total Market Value", market)

	f.SetColWidth(summarySheet, "A", "A", 28)
	f.SetColWidth(summarySheet, "B", "F", 20)
	return f, nil
}
