package models

// DocumentType is the kind of title document recorded in propertyDocs.
type DocumentType string

const (
	DocumentAOS      DocumentType = "AOS"
	DocumentSaleDeed DocumentType = "SALE DEED"
	DocumentGiftDeed DocumentType = "GIFT DEED"
	DocumentAnyDeed  DocumentType = "ANY DEED"
)

var DocumentTypes = []DocumentType{DocumentAOS, DocumentSaleDeed, DocumentGiftDeed, DocumentAnyDeed}

// DocumentDetail is the detail payload of a property document; AgreementOfSale or RegisteredDeed.
type DocumentDetail interface {
	documentDetail()
}

// AgreementOfSale is the AOS detail payload.
type AgreementOfSale struct {
	Seller            string `json:"seller,omitempty"`
	Purchaser         string `json:"purchaser,omitempty"`
	AOSDate           string `json:"aos_date,omitempty"`
	SaleConsideration string `json:"sale_consideration,omitempty"`
}

// RegisteredDeed is the detail payload shared by every registered deed.
type RegisteredDeed struct {
	Owner   string `json:"owner,omitempty"`
	DocNo   string `json:"doc_no,omitempty"`
	RegDate string `json:"reg_date,omitempty"`
	SROName string `json:"sro_name,omitempty"`
}

func (AgreementOfSale) documentDetail() {}
func (RegisteredDeed) documentDetail()  {}

type PropertyDocument struct {
	Type     DocumentType   `json:"type"`
	Details  DocumentDetail `json:"details"`
	Sentence string         `json:"generated_sentence,omitempty"`
}

// UtilityKind is the type of a utility bill.
type UtilityKind string

const (
	UtilityElectricity UtilityKind = "Electricity"
	UtilityWater       UtilityKind = "Water"
)

// Electricity distribution companies a bill can be paid to.
var ElectricityPayees = []string{"TGSPDCL", "TGNPDCL", "APCPDCL", "APSPDCL", "APEPDCL"}

type UtilityBill interface {
	UtilityKind() UtilityKind
}

type ElectricityBill struct {
	Type    UtilityKind `json:"type"`
	SCNo    string      `json:"sc_no"`
	USCNo   string      `json:"usc_no"`
	HouseNo string      `json:"house_no"`
	Name    string      `json:"name"`
	PaidTo  string      `json:"paid_to"`
}

type WaterBill struct {
	Type    UtilityKind `json:"type"`
	CANNo   string      `json:"can_no"`
	HouseNo string      `json:"house_no"`
	Name    string      `json:"name"`
}

func (ElectricityBill) UtilityKind() UtilityKind { return UtilityElectricity }
func (WaterBill) UtilityKind() UtilityKind       { return UtilityWater }

// OnlineCheckCategories are the evidence categories required before submission.
var OnlineCheckCategories = []struct {
	ID    string
	Label string
}{
	{"ec", "EC (Encumbrance Certificate)"},
	{"prohibited", "PROHIBITED LIST"},
	{"glv", "GLV"},
	{"isro", "ISRO BHUVAN SY NO CONFIRMATION"},
	{"masterPlan", "MASTER PLAN"},
	{"onlineRef", "ONLINE REFERENCES"},
}

// OnlineChecks maps a category id to the evidence file names recorded for it.
type OnlineChecks map[string][]string

// SiteDataReview locks the inspection date the first time inspection is marked completed.
type SiteDataReview struct {
	InspectionCompleted bool     `json:"inspection_completed"`
	InspectionDate      string   `json:"inspection_date,omitempty"`
	Observations        []string `json:"observations,omitempty"`
}

const StageUnderConstruction = "Under Construction"

type Floor struct {
	FloorName   string `json:"floor_name"`
	Units       int    `json:"units"`
	Occupancy   string `json:"occupancy"`
	RentalValue string `json:"rental_value"`
	Progress    *int   `json:"progress,omitempty"`
}

type PropertyDetails struct {
	StageConstruction   string           `json:"stage_construction"`
	Coordinates         string           `json:"coordinates"`
	NearbyLandmark      string           `json:"nearby_landmark"`
	NearbyRail          string           `json:"nearby_rail"`
	RailDistance        float64          `json:"rail_distance"`
	NearbyBus           string           `json:"nearby_bus"`
	BusDistance         float64          `json:"bus_distance"`
	NearbyHospital      string           `json:"nearby_hospital"`
	HospitalDistance    float64          `json:"hospital_distance"`
	DistanceCity        float64          `json:"distance_city"`
	NumFloors           int              `json:"num_floors"`
	UnitsPerFloor       string           `json:"units_per_floor"`
	TotalUnits          int              `json:"total_units"`
	InternalComposition string           `json:"internal_composition"`
	OccupancyStatus     string           `json:"occupancy_status"`
	RentalValue         string           `json:"rental_value"`
	Floors              KeyedList[Floor] `json:"floors"`
}
