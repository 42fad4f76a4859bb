package services

import (
	"fmt"
	"strings"

	"valuation/models"
	"valuation/utils"
)

var (
	MunicipalityGrades = []string{"Special Grade", "Selection Grade", "Grade I", "Grade II", "Grade III"}
	NALAPurposes       = []string{"Residential", "Commercial", "Industrial", "Institutional"}
)

type schemaKey struct {
	category models.SubchoiceCategory
	body     models.IssuingBody
}

var kindCategory = map[models.ApprovalKind]models.SubchoiceCategory{
	models.ApprovalSanctionPlan: models.CategorySanctionBody,
	models.ApprovalBPSBRS:       models.CategoryRegularizationBody,
	models.ApprovalLRS:          models.CategoryRegularizationBody,
	models.ApprovalLayout:       models.CategoryLayoutBody,
}

var categoryPrompts = map[models.SubchoiceCategory]models.SubchoicePrompt{
	models.CategorySanctionBody: {
		Category: models.CategorySanctionBody,
		Prompt:   "Select the authority that sanctioned the plan",
		Options: []models.IssuingBody{
			models.BodyDTCP, models.BodyGHMCDPMS, models.BodyHMDADPMS, models.BodyMunicipality, models.BodyGramPanchayat,
		},
	},
	models.CategoryRegularizationBody: {
		Category: models.CategoryRegularizationBody,
		Prompt:   "Select the authority that issued the proceedings",
		Options:  []models.IssuingBody{models.BodyGHMC, models.BodyHMDA, models.BodyDTCP},
	},
	models.CategoryLayoutBody: {
		Category: models.CategoryLayoutBody,
		Prompt:   "Select the authority that approved the layout",
		Options:  []models.IssuingBody{models.BodyDTCP, models.BodyHMDA, models.BodyGramPanchayat},
	},
}

var buildingList = &models.RepeatableSpec{
	Key:   "buildings",
	Label: "Buildings",
	Fields: []models.FieldSpec{
		{Key: "name", Label: "Building Name", Required: true, Input: "text"},
		{Key: "floor_count", Label: "No. of Floors", Required: true, Input: "number"},
		{Key: "built_up_area", Label: "Built-up Area", Required: true, Input: "number"},
	},
}

func proceedingSchema(numberKey, numberLabel string, issuer models.IssuingBody) models.FieldSchema {
	return models.FieldSchema{
		Shape: models.ShapeFreeTextFixedLabel,
		Fields: []models.FieldSpec{
			{Key: numberKey, Label: numberLabel, Required: true, Input: "text"},
			{Key: "date", Label: "Date", Required: true, Input: "date"},
		},
		FixedLabel: string(issuer),
	}
}

var bodySchemas = map[schemaKey]models.FieldSchema{
	{models.CategorySanctionBody, models.BodyDTCP}: {
		Shape: models.ShapeFreeTextPair,
		Fields: []models.FieldSpec{
			{Key: "file_no", Label: "File No", Required: true, Input: "text"},
			{Key: "permit_no", Label: "Permit No", Required: true, Input: "text"},
		},
		Repeatable: buildingList,
	},
	{models.CategorySanctionBody, models.BodyGHMCDPMS}: {
		Shape: models.ShapeFreeTextFixedLabel,
		Fields: []models.FieldSpec{
			{Key: "file_no", Label: "File No", Required: true, Input: "text"},
			{Key: "permit_no", Label: "Permit No", Required: true, Input: "text"},
		},
		FixedLabel: string(models.BodyGHMC),
		Repeatable: buildingList,
	},
	{models.CategorySanctionBody, models.BodyHMDADPMS}: {
		Shape: models.ShapeFreeTextFixedLabel,
		Fields: []models.FieldSpec{
			{Key: "application_no", Label: "Application No", Required: true, Input: "text"},
		},
		FixedLabel: string(models.BodyHMDA),
		Repeatable: buildingList,
	},
	{models.CategorySanctionBody, models.BodyMunicipality}: {
		Shape: models.ShapeFreeTextDropdown,
		Fields: []models.FieldSpec{
			{Key: "permit_no", Label: "Permit No", Required: true, Input: "text"},
		},
		Dropdown:   &models.DropdownSpec{Key: "grade", Label: "Municipality Grade", Options: MunicipalityGrades},
		Repeatable: buildingList,
	},
	{models.CategorySanctionBody, models.BodyGramPanchayat}: {
		Shape: models.ShapeFreeTextPair,
		Fields: []models.FieldSpec{
			{Key: "permit_no", Label: "Permit No", Required: true, Input: "text"},
			{Key: "panchayat_name", Label: "Gram Panchayat", Required: true, Input: "text"},
		},
		Repeatable: buildingList,
	},
	{models.CategoryRegularizationBody, models.BodyGHMC}:  proceedingSchema("proceeding_no", "Proceeding No", models.BodyGHMC),
	{models.CategoryRegularizationBody, models.BodyHMDA}:  proceedingSchema("proceeding_no", "Proceeding No", models.BodyHMDA),
	{models.CategoryRegularizationBody, models.BodyDTCP}:  proceedingSchema("proceeding_no", "Proceeding No", models.BodyDTCP),
	{models.CategoryLayoutBody, models.BodyDTCP}:          proceedingSchema("lp_no", "L.P. No", models.BodyDTCP),
	{models.CategoryLayoutBody, models.BodyHMDA}:          proceedingSchema("lp_no", "L.P. No", models.BodyHMDA),
	{models.CategoryLayoutBody, models.BodyGramPanchayat}: proceedingSchema("lp_no", "L.P. No", models.BodyGramPanchayat),
}

var directSchemas = map[models.ApprovalKind]models.FieldSchema{
	models.ApprovalNoPlanCase: {
		Shape:      models.ShapeRepeatable,
		Fields:     []models.FieldSpec{},
		Repeatable: buildingList,
	},
	models.ApprovalOC: {
		Shape: models.ShapeFreeTextPair,
		Fields: []models.FieldSpec{
			{Key: "certificate_no", Label: "Certificate No", Required: true, Input: "text"},
			{Key: "date", Label: "Date", Required: true, Input: "date"},
		},
	},
	models.ApprovalNALA: {
		Shape: models.ShapeFreeTextDropdown,
		Fields: []models.FieldSpec{
			{Key: "proceeding_no", Label: "Proceeding No", Required: true, Input: "text"},
			{Key: "date", Label: "Date", Required: true, Input: "date"},
		},
		Dropdown: &models.DropdownSpec{Key: "purpose", Label: "Converted For", Options: NALAPurposes},
	},
}

// ParseApprovalKind matches a kind case-insensitively against the known vocabulary.
func ParseApprovalKind(s string) (models.ApprovalKind, error) {
	s = strings.TrimSpace(s)
	for _, k := range append(append([]models.ApprovalKind{}, models.BuildingApprovalKinds...), models.LandApprovalKinds...) {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownApprovalKind, s)
}

func ParseIssuingBody(s string) (models.IssuingBody, error) {
	s = strings.TrimSpace(s)
	for _, b := range []models.IssuingBody{
		models.BodyDTCP, models.BodyGHMCDPMS, models.BodyHMDADPMS, models.BodyMunicipality,
		models.BodyGramPanchayat, models.BodyGHMC, models.BodyHMDA,
	} {
		if strings.EqualFold(string(b), s) {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIssuingBody, s)
}

// Classify is the first level of the detail dispatch: a kind either has its own schema or
// needs an issuing body first.
func Classify(kind models.ApprovalKind) (models.Classification, error) {
	if category, ok := kindCategory[kind]; ok {
		prompt := categoryPrompts[category]
		prompt.Options = append([]models.IssuingBody{}, prompt.Options...)
		return models.Classification{Kind: kind, Subchoice: &prompt}, nil
	}
	if schema, ok := directSchemas[kind]; ok {
		return models.Classification{Kind: kind, Schema: &schema}, nil
	}
	return models.Classification{}, fmt.Errorf("%w: %q", ErrUnknownApprovalKind, kind)
}

// ResolveSchema is the second level of the dispatch.
func ResolveSchema(category models.SubchoiceCategory, body models.IssuingBody) (models.FieldSchema, error) {
	schema, ok := bodySchemas[schemaKey{category, body}]
	if !ok {
		return models.FieldSchema{}, fmt.Errorf("%w: %q is not offered for %s", ErrUnknownIssuingBody, body, category)
	}
	return schema, nil
}

// SchemaFor resolves the schema of a kind, going through the issuing body when the kind needs one.
func SchemaFor(kind models.ApprovalKind, body models.IssuingBody) (models.FieldSchema, error) {
	c, err := Classify(kind)
	if err != nil {
		return models.FieldSchema{}, err
	}
	if !c.RequiresSubchoice() {
		if body != "" {
			return models.FieldSchema{}, fmt.Errorf("%w: %s takes no issuing body", ErrUnknownIssuingBody, kind)
		}
		return *c.Schema, nil
	}
	if body == "" {
		return models.FieldSchema{}, ErrSubchoicePending
	}
	return ResolveSchema(c.Subchoice.Category, body)
}

// NewApprovalDetail builds the empty detail variant for a kind and body.
func NewApprovalDetail(kind models.ApprovalKind, body models.IssuingBody) (models.ApprovalDetail, error) {
	if _, err := SchemaFor(kind, body); err != nil {
		return nil, err
	}
	var noBuildings models.KeyedList[models.SanctionedBuilding]
	switch kind {
	case models.ApprovalSanctionPlan:
		switch body {
		case models.BodyDTCP:
			return models.SanctionPlanDTCP{Buildings: noBuildings}, nil
		case models.BodyGHMCDPMS:
			return models.SanctionPlanGHMC{Issuer: string(models.BodyGHMC), Buildings: noBuildings}, nil
		case models.BodyHMDADPMS:
			return models.SanctionPlanHMDA{Issuer: string(models.BodyHMDA), Buildings: noBuildings}, nil
		case models.BodyMunicipality:
			return models.SanctionPlanMunicipality{Buildings: noBuildings}, nil
		case models.BodyGramPanchayat:
			return models.SanctionPlanGramPanchayat{Buildings: noBuildings}, nil
		}
	case models.ApprovalNoPlanCase:
		return models.NoPlanCase{Buildings: noBuildings}, nil
	case models.ApprovalBPSBRS:
		return models.BuildingRegularization{Issuer: string(body)}, nil
	case models.ApprovalOC:
		return models.OccupancyCertificate{}, nil
	case models.ApprovalLRS:
		return models.LandRegularization{Issuer: string(body)}, nil
	case models.ApprovalLayout:
		return models.LayoutApproval{Issuer: string(body)}, nil
	case models.ApprovalNALA:
		return models.NALAConversion{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownIssuingBody, body)
}

// SelectApprovalKind starts a fresh slot for kind. Nothing of the previous slot survives.
// Kinds that need an issuing body get no details until SelectIssuingBody is called.
func SelectApprovalKind(kind models.ApprovalKind) (models.ApprovalChoice, error) {
	if kind == "" {
		return models.ApprovalChoice{}, nil
	}
	c, err := Classify(kind)
	if err != nil {
		return models.ApprovalChoice{}, err
	}
	if c.RequiresSubchoice() {
		return models.ApprovalChoice{Kind: kind}, nil
	}
	detail, err := NewApprovalDetail(kind, "")
	if err != nil {
		return models.ApprovalChoice{}, err
	}
	return models.ApprovalChoice{Kind: kind, Detail: detail}, nil
}

// SelectIssuingBody answers the subchoice of a slot, replacing any details entered under another body.
func SelectIssuingBody(choice models.ApprovalChoice, body models.IssuingBody) (models.ApprovalChoice, error) {
	if choice.Kind == "" {
		return choice, ErrNoDetails
	}
	c, err := Classify(choice.Kind)
	if err != nil {
		return choice, err
	}
	if !c.RequiresSubchoice() {
		return choice, fmt.Errorf("%w: %s takes no issuing body", ErrUnknownIssuingBody, choice.Kind)
	}
	detail, err := NewApprovalDetail(choice.Kind, body)
	if err != nil {
		return choice, err
	}
	return models.ApprovalChoice{Kind: choice.Kind, Body: body, Detail: detail}, nil
}

// SetApprovalField records one free-text or dropdown answer on the slot's details.
// Fixed issuer labels are read-only.
func SetApprovalField(choice models.ApprovalChoice, field string, raw any) (models.ApprovalChoice, error) {
	if choice.Detail == nil {
		if choice.Kind != "" {
			return choice, ErrSubchoicePending
		}
		return choice, ErrNoDetails
	}
	value := strings.TrimSpace(utils.ToString(raw))
	unknown := fmt.Errorf("%w: %q for %s", ErrUnknownField, field, choice.Kind)

	var next models.ApprovalDetail
	switch d := choice.Detail.(type) {
	case models.SanctionPlanDTCP:
		switch field {
		case "file_no":
			d.FileNo = value
		case "permit_no":
			d.PermitNo = value
		default:
			return choice, unknown
		}
		next = d
	case models.SanctionPlanGHMC:
		switch field {
		case "file_no":
			d.FileNo = value
		case "permit_no":
			d.PermitNo = value
		default:
			return choice, unknown
		}
		next = d
	case models.SanctionPlanHMDA:
		if field != "application_no" {
			return choice, unknown
		}
		d.ApplicationNo = value
		next = d
	case models.SanctionPlanMunicipality:
		switch field {
		case "permit_no":
			d.PermitNo = value
		case "grade":
			if err := checkOption(value, MunicipalityGrades); err != nil {
				return choice, err
			}
			d.Grade = value
		default:
			return choice, unknown
		}
		next = d
	case models.SanctionPlanGramPanchayat:
		switch field {
		case "permit_no":
			d.PermitNo = value
		case "panchayat_name":
			d.PanchayatName = value
		default:
			return choice, unknown
		}
		next = d
	case models.NoPlanCase:
		return choice, unknown
	case models.BuildingRegularization:
		switch field {
		case "proceeding_no":
			d.ProceedingNo = value
		case "date":
			d.Date = value
		default:
			return choice, unknown
		}
		next = d
	case models.OccupancyCertificate:
		switch field {
		case "certificate_no":
			d.CertificateNo = value
		case "date":
			d.Date = value
		default:
			return choice, unknown
		}
		next = d
	case models.LandRegularization:
		switch field {
		case "proceeding_no":
			d.ProceedingNo = value
		case "date":
			d.Date = value
		default:
			return choice, unknown
		}
		next = d
	case models.LayoutApproval:
		switch field {
		case "lp_no":
			d.LPNo = value
		case "date":
			d.Date = value
		default:
			return choice, unknown
		}
		next = d
	case models.NALAConversion:
		switch field {
		case "proceeding_no":
			d.ProceedingNo = value
		case "date":
			d.Date = value
		case "purpose":
			if err := checkOption(value, NALAPurposes); err != nil {
				return choice, err
			}
			d.Purpose = value
		default:
			return choice, unknown
		}
		next = d
	default:
		return choice, unknown
	}
	choice.Detail = next
	return choice, nil
}

func checkOption(value string, options []string) error {
	if value == "" {
		return nil
	}
	for _, o := range options {
		if o == value {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidOption, value, strings.Join(options, ", "))
}

// BuildingsOf returns the building list of variants that carry one.
func BuildingsOf(detail models.ApprovalDetail) (models.KeyedList[models.SanctionedBuilding], bool) {
	switch d := detail.(type) {
	case models.SanctionPlanDTCP:
		return d.Buildings, true
	case models.SanctionPlanGHMC:
		return d.Buildings, true
	case models.SanctionPlanHMDA:
		return d.Buildings, true
	case models.SanctionPlanMunicipality:
		return d.Buildings, true
	case models.SanctionPlanGramPanchayat:
		return d.Buildings, true
	case models.NoPlanCase:
		return d.Buildings, true
	}
	return models.KeyedList[models.SanctionedBuilding]{}, false
}

func withBuildings(detail models.ApprovalDetail, list models.KeyedList[models.SanctionedBuilding]) models.ApprovalDetail {
	switch d := detail.(type) {
	case models.SanctionPlanDTCP:
		d.Buildings = list
		return d
	case models.SanctionPlanGHMC:
		d.Buildings = list
		return d
	case models.SanctionPlanHMDA:
		d.Buildings = list
		return d
	case models.SanctionPlanMunicipality:
		d.Buildings = list
		return d
	case models.SanctionPlanGramPanchayat:
		d.Buildings = list
		return d
	case models.NoPlanCase:
		d.Buildings = list
		return d
	}
	return detail
}

func buildingsOrErr(choice models.ApprovalChoice) (models.KeyedList[models.SanctionedBuilding], error) {
	if choice.Detail == nil {
		return models.KeyedList[models.SanctionedBuilding]{}, ErrNoDetails
	}
	list, ok := BuildingsOf(choice.Detail)
	if !ok {
		return list, fmt.Errorf("%w: %s has no building list", ErrUnknownField, choice.Kind)
	}
	return list, nil
}

// AddSanctionedBuilding appends a blank building and returns its key.
func AddSanctionedBuilding(choice models.ApprovalChoice) (models.ApprovalChoice, int, error) {
	list, err := buildingsOrErr(choice)
	if err != nil {
		return choice, 0, err
	}
	list, key := list.Add(models.SanctionedBuilding{})
	choice.Detail = withBuildings(choice.Detail, list)
	return choice, key, nil
}

func RemoveSanctionedBuilding(choice models.ApprovalChoice, key int) (models.ApprovalChoice, error) {
	list, err := buildingsOrErr(choice)
	if err != nil {
		return choice, err
	}
	list, ok := list.Remove(key)
	if !ok {
		return choice, fmt.Errorf("%w: building %d", ErrRowNotFound, key)
	}
	choice.Detail = withBuildings(choice.Detail, list)
	return choice, nil
}

func SetSanctionedBuildingField(choice models.ApprovalChoice, key int, field string, raw any) (models.ApprovalChoice, error) {
	list, err := buildingsOrErr(choice)
	if err != nil {
		return choice, err
	}
	var apply func(models.SanctionedBuilding) models.SanctionedBuilding
	switch field {
	case "name":
		apply = func(b models.SanctionedBuilding) models.SanctionedBuilding {
			b.Name = utils.ToString(raw)
			return b
		}
	case "floor_count":
		apply = func(b models.SanctionedBuilding) models.SanctionedBuilding {
			b.FloorCount = utils.ToInt(raw)
			return b
		}
	case "built_up_area":
		apply = func(b models.SanctionedBuilding) models.SanctionedBuilding {
			b.BuiltUpArea = utils.ToFloat(raw)
			return b
		}
	default:
		return choice, fmt.Errorf("%w: building %q", ErrUnknownField, field)
	}
	list, ok := list.Update(key, apply)
	if !ok {
		return choice, fmt.Errorf("%w: building %d", ErrRowNotFound, key)
	}
	choice.Detail = withBuildings(choice.Detail, list)
	return choice, nil
}
