package models

import "time"

type PropertyType string

const (
	PropertyLandAndBuildings PropertyType = "Land and Buildings"
	PropertyFlat             PropertyType = "Flat"
)

type BasicInformation struct {
	PropertyType   PropertyType `json:"property_type"`
	InspectionDate string       `json:"inspection_date"`
	ValuationDate  string       `json:"valuation_date"`
	DateError      string       `json:"date_error,omitempty"`
}

// Section keys of the FormRecord.
const (
	SectionBasic             = "basic"
	SectionPropertyDocs      = "propertyDocs"
	SectionApprovalDocs      = "approvalDocs"
	SectionUtilityBill       = "utilityBill"
	SectionAdditionalDocs    = "additionalDocs"
	SectionLocation          = "location"
	SectionOnlineChecks      = "onlineChecks"
	SectionSiteData          = "siteData"
	SectionPropertyDetails   = "propertyDetails"
	SectionLandDetails       = "landDetails"
	SectionLandValuation     = "landValuation"
	SectionEnquiries         = "enquiries"
	SectionBuildingDetails   = "buildingDetails"
	SectionBuildingValuation = "buildingValuation"
	SectionFlatValuation     = "flatValuation"
	SectionComments          = "comments"
)

// CommonSections appear for every property type, in form order.
var CommonSections = []string{
	SectionBasic, SectionPropertyDocs, SectionApprovalDocs, SectionUtilityBill, SectionAdditionalDocs,
	SectionLocation, SectionOnlineChecks, SectionSiteData, SectionPropertyDetails,
}

var LandAndBuildingSections = []string{
	SectionLandDetails, SectionLandValuation, SectionEnquiries, SectionBuildingDetails,
	SectionBuildingValuation, SectionComments,
}

var FlatSections = []string{SectionFlatValuation, SectionComments}

// SectionsFor lists the sections shown for a property type, in form order.
func SectionsFor(pt PropertyType) []string {
	sections := append([]string{}, CommonSections...)
	switch pt {
	case PropertyLandAndBuildings:
		sections = append(sections, LandAndBuildingSections...)
	case PropertyFlat:
		sections = append(sections, FlatSections...)
	}
	return sections
}

type EventAction string

const (
	ActionSet      EventAction = "set"
	ActionAdd      EventAction = "add"
	ActionRemove   EventAction = "remove"
	ActionGenerate EventAction = "generate"
)

// FieldEvent is one change coming from the presentation layer. Row and SubRow are
// creation-order keys of repeatable rows; Value is the raw string, number or object typed by the user.
type FieldEvent struct {
	Section string      `json:"section" binding:"required" example:"landDetails"`
	Action  EventAction `json:"action,omitempty" example:"set"`
	Row     *int        `json:"row,omitempty"`
	SubRow  *int        `json:"sub_row,omitempty"`
	Field   string      `json:"field" example:"documented"`
	Value   any         `json:"value"`
}

// FormRecord maps a section key to that section's derived payload. Keys are replaced, never deleted.
type FormRecord map[string]any

// With returns a copy of r with section set to payload.
func (r FormRecord) With(section string, payload any) FormRecord {
	next := make(FormRecord, len(r)+1)
	for k, v := range r {
		next[k] = v
	}
	next[section] = payload
	return next
}

// Only returns a copy of r restricted to the given sections.
func (r FormRecord) Only(sections []string) FormRecord {
	next := make(FormRecord, len(sections))
	for _, s := range sections {
		if v, ok := r[s]; ok {
			next[s] = v
		}
	}
	return next
}

// Submission is the completed record handed to the submission sink.
type Submission struct {
	SessionID    string       `json:"session_id"`
	PropertyType PropertyType `json:"property_type"`
	State        string       `json:"state"`
	District     string       `json:"district"`
	Mandal       string       `json:"mandal"`
	Village      string       `json:"village"`
	Record       FormRecord   `json:"record"`
	SubmittedAt  time.Time    `json:"submitted_at"`
}

// FieldChange is one audited field event.
type FieldChange struct {
	SessionID string    `json:"session_id"`
	Section   string    `json:"section"`
	Action    string    `json:"action"`
	Field     string    `json:"field"`
	RowKey    *int      `json:"row_key,omitempty"`
	NewValue  string    `json:"new_value"`
	ChangedAt time.Time `json:"changed_at"`
}
