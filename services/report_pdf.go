package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"valuation/utils"
)

// BuildValuationPDF writes a one-document summary of the report to w.
func BuildValuationPDF(w io.Writer, r ValuationReport) error {
	titleCaser := cases.Title(language.Und)
	amount := utils.FormatAmount

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetMargins(10, 10, 10)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, "PROPERTY VALUATION REPORT")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(190, 6, fmt.Sprintf("Reference: %s    Generated: %s", r.SessionID, r.GeneratedAt.Format("02-Jan-2006 15:04")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 8, title, "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
	}
	pair := func(label, value string) {
		pdf.CellFormat(70, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(120, 7, value, "1", 1, "L", false, 0, "")
	}

	section("Basic Information")
	pair("Property Type", string(r.Basic.PropertyType))
	pair("Date of Inspection", r.Basic.InspectionDate)
	pair("Date of Valuation", r.Basic.ValuationDate)
	pdf.Ln(4)

	section("Location")
	sel := r.Location.Selection
	pair("State", sel.State)
	pair("District", sel.District)
	pair("Mandal", titleCaser.String(strings.ToLower(sel.Mandal)))
	pair("Village", titleCaser.String(strings.ToLower(sel.Village)))
	pair("Sy. Nos", r.Location.SyNos)
	pair("Plot No", r.Location.PlotNo)
	pair("Pincode", r.Location.Pincode)
	pdf.Ln(4)

	if sentences := generatedSentences(r); len(sentences) > 0 {
		section("Documents Perused")
		for _, s := range sentences {
			pdf.MultiCell(190, 6, s, "1", "L", false)
		}
		pdf.Ln(4)
	}

	if r.Land != nil {
		section("Land Details")
		pair("Gross Source", string(r.Land.GrossSource))
		pair("Affected Type", string(r.Land.AffectedType))
		pair("Net Area ("+r.Land.Units+")", amount(r.Land.NetArea))
		pair("Area Considered ("+r.Land.Units+")", amount(r.Land.AreaConsidered))
		pdf.Ln(4)
	}
	if r.LandValuation != nil {
		section("Land Valuation")
		pair("Guideline Rate", amount(r.LandValuation.GuidelineRate))
		pair("Guideline Value", amount(r.LandValuation.GuidelineValue))
		pair("Unit Rate", amount(r.LandValuation.UnitRate))
		pair("Land Value", amount(r.LandValuation.LandValue))
		pdf.Ln(4)
	}
	if len(r.BuildingValuation) > 0 {
		section("Building Valuation")
		pdf.SetFont("Arial", "B", 9)
		for _, h := range []struct {
			w     float64
			label string
		}{{30, "Building"}, {25, "Floor"}, {25, "Area"}, {35, "Guideline Value"}, {35, "Market Value"}, {40, "Replacement Value"}} {
			pdf.CellFormat(h.w, 7, h.label, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		for _, row := range r.BuildingValuation {
			v := row.Value
			pdf.CellFormat(30, 7, v.Building, "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 7, v.Floor, "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 7, amount(v.Area), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 7, amount(v.GuidelineValue), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 7, amount(v.MarketValue), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 7, amount(v.ReplacementValue), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}
	if r.Flat != nil {
		section("Flat Valuation")
		pair("Flat SBUA", amount(r.Flat.FlatSBUA))
		pair("Carpet Area", amount(r.Flat.CarpetArea))
		pair("UDS", amount(r.Flat.FlatUDS))
		pair("Guideline Value", amount(r.Flat.GuidelineValue))
		pair("Flat Value", amount(r.Flat.FlatValue))
		pair("Replacement Value", amount(r.Flat.ReplacementValue))
		pdf.Ln(4)
	}
	if len(r.Enquiries) > 0 {
		section("Market Enquiries")
		for i, row := range r.Enquiries {
			pair(fmt.Sprintf("Enquiry %d", i+1), fmt.Sprintf("%s x %s = %s",
				amount(row.Value.PerSqyd), amount(row.Value.PlotArea), amount(row.Value.TotalValue)))
		}
		pdf.Ln(4)
	}

	guideline, market := r.Totals()
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(120, 8, "Total Guideline Value")
	pdf.CellFormat(70, 8, amount(guideline), "1", 1, "R", false, 0, "")
	pdf.Cell(120, 8, "Total Market Value")
	pdf.CellFormat(70, 8, amount(market), "1", 1, "R", false, 0, "")

	if strings.TrimSpace(r.Comments) != "" {
		pdf.Ln(6)
		section("Comments / Remarks")
		pdf.MultiCell(190, 6, r.Comments, "1", "L", false)
	}

	return pdf.Output(w)
}

func generatedSentences(r ValuationReport) []string {
	var out []string
	for _, d := range r.PropertyDocs {
		if d.Sentence != "" {
			out = append(out, d.Sentence)
		}
	}
	return out
}
