package models

// ValuationInputs are the raw figures of one valuation row. Derived values are never stored
// alongside them; see ValuationRow.
type ValuationInputs struct {
	Area            float64 `json:"area" example:"1000.5"`
	GuidelineRate   float64 `json:"guideline_rate" example:"2500"`
	UnitRate        float64 `json:"unit_rate" example:"3200"`
	ReplacementCost float64 `json:"replacement_cost,omitempty" example:"1800"`
}

// ValuationRow is the projection of ValuationInputs with every derived value filled in.
type ValuationRow struct {
	ValuationInputs
	GuidelineValue   float64 `json:"guideline_value"`
	MarketValue      float64 `json:"market_value"`
	ReplacementValue float64 `json:"replacement_value"`
}

// GrossSource selects which of the three land extents is the gross area.
type GrossSource string

const (
	GrossDocumented GrossSource = "documented" // A, as per documents
	GrossPlanned    GrossSource = "planned"    // B, as per plan
	GrossActual     GrossSource = "actual"     // C, as per site
)

// AffectedType says which deductions apply to the gross area.
type AffectedType string

const (
	AffectedNone AffectedType = "none"
	AffectedRoad AffectedType = "road"
	AffectedNala AffectedType = "nala"
	AffectedBoth AffectedType = "both"
)

// LandAreaInputs holds the raw land extents and deductions.
type LandAreaInputs struct {
	Documented   float64      `json:"documented"`
	Planned      float64      `json:"planned"`
	Actual       float64      `json:"actual"`
	GrossSource  GrossSource  `json:"gross_source"`
	AffectedType AffectedType `json:"affected_type"`
	RoadAffected float64      `json:"road_affected"`
	NalaAffected float64      `json:"nala_affected"`
}

// LandAreaResult keeps NetArea and AreaConsidered apart even though they are equal today;
// valuation always reads AreaConsidered.
type LandAreaResult struct {
	NetArea        float64 `json:"net_area"`
	AreaConsidered float64 `json:"area_considered"`
}

// LandDetails is the landDetails section payload.
type LandDetails struct {
	LandAreaInputs
	Units string `json:"units"` // SqYds|SqMts|Sft|Acres
}

// LandDetailsView is LandDetails plus its resolved areas.
type LandDetailsView struct {
	LandDetails
	LandAreaResult
}

// LandValuation stores only the rates; the area comes from landDetails.
type LandValuation struct {
	GuidelineRate float64 `json:"guideline_rate"`
	UnitRate      float64 `json:"unit_rate"`
}

type LandValuationView struct {
	AreaConsidered float64 `json:"area_considered"`
	GuidelineRate  float64 `json:"guideline_rate"`
	GuidelineValue float64 `json:"guideline_value"`
	UnitRate       float64 `json:"unit_rate"`
	LandValue      float64 `json:"land_value"`
}

// BuildingDetail is one row of the building / floor details table.
type BuildingDetail struct {
	Building        string  `json:"building"`
	FloorName       string  `json:"floor_name"`
	Type            string  `json:"type"`
	BUAPlan         float64 `json:"bua_plan"`
	BUAActual       float64 `json:"bua_actual"`
	PermissibleArea float64 `json:"permissible_area"`
	AreaConsidered  float64 `json:"area_considered"`
}

// BuildingValuationEntry is one building valuation row as entered.
type BuildingValuationEntry struct {
	Building string `json:"building"`
	Floor    string `json:"floor"`
	Type     string `json:"type"`
	ValuationInputs
}

type BuildingValuationView struct {
	Building string `json:"building"`
	Floor    string `json:"floor"`
	Type     string `json:"type"`
	ValuationRow
}

// FlatValuation values a flat on its super built-up area.
type FlatValuation struct {
	FlatSBUA        float64 `json:"flat_sbua"`
	CarpetArea      float64 `json:"carpet_area"`
	FlatUDS         float64 `json:"flat_uds"`
	TotalLandArea   float64 `json:"total_land_area"`
	GuidelineRate   float64 `json:"guideline_rate"`
	UnitRate        float64 `json:"unit_rate"`
	ReplacementCost float64 `json:"replacement_cost"`
}

type FlatValuationView struct {
	FlatValuation
	GuidelineValue   float64 `json:"guideline_value"`
	FlatValue        float64 `json:"flat_value"`
	ReplacementValue float64 `json:"replacement_value"`
}

// Enquiry records a market enquiry near the property.
type Enquiry struct {
	PerSqyd  float64 `json:"per_sqyd"`
	PlotArea float64 `json:"plot_area"`
}

type EnquiryView struct {
	Enquiry
	TotalValue float64 `json:"total_value"`
}
