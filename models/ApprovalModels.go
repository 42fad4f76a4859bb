package models

// ApprovalKind is the document type picked for a building- or land-approval slot.
type ApprovalKind string

const (
	ApprovalSanctionPlan ApprovalKind = "SANCTION PLAN"
	ApprovalNoPlanCase   ApprovalKind = "NO PLAN CASE"
	ApprovalBPSBRS       ApprovalKind = "BPS/BRS"
	ApprovalOC           ApprovalKind = "OC"
	ApprovalLRS          ApprovalKind = "LRS"
	ApprovalLayout       ApprovalKind = "LAYOUT"
	ApprovalNALA         ApprovalKind = "NALA"
)

// BuildingApprovalKinds and LandApprovalKinds are the options of the two slots, in display order.
var BuildingApprovalKinds = []ApprovalKind{ApprovalSanctionPlan, ApprovalNoPlanCase, ApprovalBPSBRS, ApprovalOC}
var LandApprovalKinds = []ApprovalKind{ApprovalLRS, ApprovalLayout, ApprovalNALA}

// IssuingBody is the authority that issued an approval.
type IssuingBody string

const (
	BodyDTCP          IssuingBody = "DTCP"
	BodyGHMCDPMS      IssuingBody = "GHMC DPMS"
	BodyHMDADPMS      IssuingBody = "HMDA DPMS"
	BodyMunicipality  IssuingBody = "MUNICIPALITY"
	BodyGramPanchayat IssuingBody = "GRAM PANCHAYAT"
	BodyGHMC          IssuingBody = "GHMC"
	BodyHMDA          IssuingBody = "HMDA"
)

// SubchoiceCategory groups the issuing bodies a kind can be disambiguated by.
type SubchoiceCategory string

const (
	CategorySanctionBody       SubchoiceCategory = "sanction_body"
	CategoryRegularizationBody SubchoiceCategory = "regularization_body"
	CategoryLayoutBody         SubchoiceCategory = "layout_body"
)

// SchemaShape is the layout of the detail fields a schema asks for.
type SchemaShape string

const (
	ShapeFreeTextPair       SchemaShape = "free_text_pair"
	ShapeFreeTextFixedLabel SchemaShape = "free_text_fixed_label"
	ShapeFreeTextDropdown   SchemaShape = "free_text_dropdown"
	ShapeRepeatable         SchemaShape = "repeatable"
)

type FieldSpec struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Input    string `json:"input"` // text|date|number
}

type DropdownSpec struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

type RepeatableSpec struct {
	Key    string      `json:"key"`
	Label  string      `json:"label"`
	Fields []FieldSpec `json:"fields"`
}

// FieldSchema describes the detail fields of one resolved approval variant.
type FieldSchema struct {
	Shape      SchemaShape     `json:"shape"`
	Fields     []FieldSpec     `json:"fields"`
	FixedLabel string          `json:"fixed_label,omitempty"`
	Dropdown   *DropdownSpec   `json:"dropdown,omitempty"`
	Repeatable *RepeatableSpec `json:"repeatable,omitempty"`
}

type SubchoicePrompt struct {
	Category SubchoiceCategory `json:"category"`
	Prompt   string            `json:"prompt"`
	Options  []IssuingBody     `json:"options"`
}

// Classification is either a directly usable schema or a prompt for a second selection.
// Exactly one of Schema and Subchoice is set for a known kind.
type Classification struct {
	Kind      ApprovalKind     `json:"kind"`
	Schema    *FieldSchema     `json:"schema,omitempty"`
	Subchoice *SubchoicePrompt `json:"subchoice,omitempty"`
}

func (c Classification) RequiresSubchoice() bool { return c.Subchoice != nil }

// SanctionedBuilding is one entry of the building list carried by sanction plans and no-plan cases.
type SanctionedBuilding struct {
	Name        string  `json:"name"`
	FloorCount  int     `json:"floor_count"`
	BuiltUpArea float64 `json:"built_up_area"`
}

// ApprovalDetail is the detail payload of one approval variant. The set of implementations is
// closed; services dispatch over it with a type switch.
type ApprovalDetail interface {
	ApprovalKind() ApprovalKind
	approvalDetail()
}

type SanctionPlanDTCP struct {
	FileNo    string                        `json:"file_no"`
	PermitNo  string                        `json:"permit_no"`
	Buildings KeyedList[SanctionedBuilding] `json:"buildings"`
}

type SanctionPlanGHMC struct {
	FileNo    string                        `json:"file_no"`
	PermitNo  string                        `json:"permit_no"`
	Issuer    string                        `json:"issuer"`
	Buildings KeyedList[SanctionedBuilding] `json:"buildings"`
}

type SanctionPlanHMDA struct {
	ApplicationNo string                        `json:"application_no"`
	Issuer        string                        `json:"issuer"`
	Buildings     KeyedList[SanctionedBuilding] `json:"buildings"`
}

type SanctionPlanMunicipality struct {
	PermitNo  string                        `json:"permit_no"`
	Grade     string                        `json:"grade"`
	Buildings KeyedList[SanctionedBuilding] `json:"buildings"`
}

type SanctionPlanGramPanchayat struct {
	PermitNo      string                        `json:"permit_no"`
	PanchayatName string                        `json:"panchayat_name"`
	Buildings     KeyedList[SanctionedBuilding] `json:"buildings"`
}

type NoPlanCase struct {
	Buildings KeyedList[SanctionedBuilding] `json:"buildings"`
}

// BuildingRegularization is a BPS/BRS proceeding.
type BuildingRegularization struct {
	ProceedingNo string `json:"proceeding_no"`
	Date         string `json:"date"`
	Issuer       string `json:"issuer"`
}

type OccupancyCertificate struct {
	CertificateNo string `json:"certificate_no"`
	Date          string `json:"date"`
}

// LandRegularization is an LRS proceeding.
type LandRegularization struct {
	ProceedingNo string `json:"proceeding_no"`
	Date         string `json:"date"`
	Issuer       string `json:"issuer"`
}

type LayoutApproval struct {
	LPNo   string `json:"lp_no"`
	Date   string `json:"date"`
	Issuer string `json:"issuer"`
}

// NALAConversion is a non-agricultural land-use conversion order.
type NALAConversion struct {
	ProceedingNo string `json:"proceeding_no"`
	Date         string `json:"date"`
	Purpose      string `json:"purpose"`
}

func (SanctionPlanDTCP) ApprovalKind() ApprovalKind          { return ApprovalSanctionPlan }
func (SanctionPlanGHMC) ApprovalKind() ApprovalKind          { return ApprovalSanctionPlan }
func (SanctionPlanHMDA) ApprovalKind() ApprovalKind          { return ApprovalSanctionPlan }
func (SanctionPlanMunicipality) ApprovalKind() ApprovalKind  { return ApprovalSanctionPlan }
func (SanctionPlanGramPanchayat) ApprovalKind() ApprovalKind { return ApprovalSanctionPlan }
func (NoPlanCase) ApprovalKind() ApprovalKind                { return ApprovalNoPlanCase }
func (BuildingRegularization) ApprovalKind() ApprovalKind    { return ApprovalBPSBRS }
func (OccupancyCertificate) ApprovalKind() ApprovalKind      { return ApprovalOC }
func (LandRegularization) ApprovalKind() ApprovalKind        { return ApprovalLRS }
func (LayoutApproval) ApprovalKind() ApprovalKind            { return ApprovalLayout }
func (NALAConversion) ApprovalKind() ApprovalKind            { return ApprovalNALA }

func (SanctionPlanDTCP) approvalDetail()          {}
func (SanctionPlanGHMC) approvalDetail()          {}
func (SanctionPlanHMDA) approvalDetail()          {}
func (SanctionPlanMunicipality) approvalDetail()  {}
func (SanctionPlanGramPanchayat) approvalDetail() {}
func (NoPlanCase) approvalDetail()                {}
func (BuildingRegularization) approvalDetail()    {}
func (OccupancyCertificate) approvalDetail()      {}
func (LandRegularization) approvalDetail()        {}
func (LayoutApproval) approvalDetail()            {}
func (NALAConversion) approvalDetail()            {}

// ApprovalChoice is one approval slot. Detail is nil until the kind (and body, when the kind
// needs one) has been chosen. Changing Kind replaces Body and Detail wholesale.
type ApprovalChoice struct {
	Kind   ApprovalKind   `json:"kind"`
	Body   IssuingBody    `json:"body,omitempty"`
	Detail ApprovalDetail `json:"details"`
}

// ApprovalDocument pairs a building-approval slot with a land-approval slot.
type ApprovalDocument struct {
	Building ApprovalChoice `json:"building"`
	Land     ApprovalChoice `json:"land"`
}
