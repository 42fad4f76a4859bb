package services

import (
	"fmt"
	"sync"
	"time"

	"valuation/models"
	"valuation/utils"
)

// Session is one valuation form being filled in. Each section owns its state; after every
// event the section's derived payload is merged into the FormRecord under the section key.
// Derived values are recomputed from inputs on every read and never stored.
type Session struct {
	mu           sync.Mutex
	id           string
	geo          GeoLookup
	now          func() time.Time
	observations []string

	basic             models.BasicInformation
	propertyDocs      models.KeyedList[models.PropertyDocument]
	approvalDocs      models.KeyedList[models.ApprovalDocument]
	utilityBills      models.KeyedList[models.UtilityBill]
	additionalDocs    string
	location          models.LocationDetails
	onlineChecks      models.OnlineChecks
	siteData          models.SiteDataReview
	propertyDetails   models.PropertyDetails
	landDetails       models.LandDetails
	landValuation     models.LandValuation
	enquiries         models.KeyedList[models.Enquiry]
	buildingDetails   models.KeyedList[models.BuildingDetail]
	buildingValuation models.KeyedList[models.BuildingValuationEntry]
	flatValuation     models.FlatValuation
	comments          string

	record    models.FormRecord
	createdAt time.Time
	updatedAt time.Time
}

// NewSession starts an empty form. Property and approval documents start with one blank row.
func NewSession(id string, geo GeoLookup, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{
		id:           id,
		geo:          geo,
		now:          now,
		observations: DefaultSiteObservations,
		location:     models.LocationDetails{Selection: models.EmptyGeoSelection()},
		onlineChecks: models.OnlineChecks{},
		landDetails:  DefaultLandDetails(),
		record:       models.FormRecord{},
	}
	s.propertyDocs, _ = s.propertyDocs.Add(models.PropertyDocument{})
	s.approvalDocs, _ = s.approvalDocs.Add(models.ApprovalDocument{})
	s.createdAt = now()
	s.updatedAt = s.createdAt
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

func (s *Session) PropertyType() models.PropertyType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basic.PropertyType
}

// Record returns the aggregate built so far.
func (s *Session) Record() models.FormRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Only(allSections)
}

var allSections = append(append(append([]string{}, models.CommonSections...), models.LandAndBuildingSections...), models.FlatSections...)

// Apply runs one field event through the owning section and merges the section's new payload
// into the record.
func (s *Session) Apply(ev models.FieldEvent) (models.EventResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.Action == "" {
		ev.Action = models.ActionSet
	}
	var row, subRow int
	var err error

	switch ev.Section {
	case models.SectionBasic:
		s.basic, err = SetBasicField(s.basic, ev.Field, utils.ToString(ev.Value))
		if err != nil {
			err = fmt.Errorf("%w: %q", err, ev.Field)
		}
	case models.SectionPropertyDocs:
		s.propertyDocs, row, err = s.reducePropertyDocs(ev)
	case models.SectionApprovalDocs:
		s.approvalDocs, row, subRow, err = ReduceApprovalDocs(s.approvalDocs, ev)
	case models.SectionUtilityBill:
		s.utilityBills, row, err = reduceUtilityBills(s.utilityBills, ev)
	case models.SectionAdditionalDocs:
		s.additionalDocs, err = setText(s.additionalDocs, ev)
	case models.SectionComments:
		s.comments, err = setText(s.comments, ev)
	case models.SectionLocation:
		if ev.Action != models.ActionSet {
			err = fmt.Errorf("%w: %s on %s", ErrUnknownAction, ev.Action, ev.Section)
			break
		}
		s.location, err = SetLocationField(s.geo, s.location, ev.Field, ev.Value)
	case models.SectionOnlineChecks:
		s.onlineChecks, err = ReduceOnlineChecks(s.onlineChecks, ev)
	case models.SectionSiteData:
		s.siteData, err = SetSiteData(s.siteData, ev.Field, ev.Value, s.now().Format(DateLayout))
	case models.SectionPropertyDetails:
		s.propertyDetails, row, err = reducePropertyDetails(s.propertyDetails, ev)
	case models.SectionLandDetails:
		s.landDetails, err = SetLandDetailsField(s.landDetails, ev.Field, ev.Value)
	case models.SectionLandValuation:
		s.landValuation, err = SetLandValuationField(s.landValuation, ev.Field, ev.Value)
	case models.SectionEnquiries:
		s.enquiries, row, err = reduceList(s.enquiries, ev, models.Enquiry{}, SetEnquiryField)
	case models.SectionBuildingDetails:
		s.buildingDetails, row, err = reduceList(s.buildingDetails, ev, models.BuildingDetail{}, SetBuildingDetailField)
	case models.SectionBuildingValuation:
		s.buildingValuation, row, err = reduceList(s.buildingValuation, ev, models.BuildingValuationEntry{}, SetBuildingValuationField)
	case models.SectionFlatValuation:
		s.flatValuation, err = SetFlatValuationField(s.flatValuation, ev.Field, ev.Value)
	default:
		return models.EventResponse{}, fmt.Errorf("%w: %q", ErrUnknownSection, ev.Section)
	}
	if err != nil {
		return models.EventResponse{}, err
	}

	payload := s.view(ev.Section)
	s.record = s.record.With(ev.Section, payload)
	switch ev.Section {
	case models.SectionLandDetails:
		s.record = s.record.With(models.SectionLandValuation, s.view(models.SectionLandValuation))
	case models.SectionBasic:
		if _, ok := s.record[models.SectionLocation]; ok {
			s.record = s.record.With(models.SectionLocation, s.view(models.SectionLocation))
		}
	}
	s.updatedAt = s.now()

	resp := models.EventResponse{Section: ev.Section, Data: payload, Record: s.record}
	if row != 0 {
		resp.Row = &row
	}
	if subRow != 0 {
		resp.SubRow = &subRow
	}
	return resp, nil
}

// View returns the current derived payload of one section.
func (s *Session) View(section string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, known := range allSections {
		if known == section {
			return s.view(section), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

func (s *Session) view(section string) any {
	switch section {
	case models.SectionBasic:
		return s.basic
	case models.SectionPropertyDocs:
		return s.propertyDocs
	case models.SectionApprovalDocs:
		return s.approvalDocs
	case models.SectionUtilityBill:
		return s.utilityBills
	case models.SectionAdditionalDocs:
		return map[string]string{"text": s.additionalDocs}
	case models.SectionComments:
		return map[string]string{"text": s.comments}
	case models.SectionLocation:
		return LocationView(s.location, s.basic.PropertyType)
	case models.SectionOnlineChecks:
		return s.onlineChecks
	case models.SectionSiteData:
		return SiteDataView(s.siteData, s.observations)
	case models.SectionPropertyDetails:
		return s.propertyDetails
	case models.SectionLandDetails:
		return LandDetailsView(s.landDetails)
	case models.SectionLandValuation:
		return LandValuationView(s.landValuation, ResolveLandArea(s.landDetails.LandAreaInputs).AreaConsidered)
	case models.SectionEnquiries:
		return models.MapKeyedList(s.enquiries, EnquiryView)
	case models.SectionBuildingDetails:
		return s.buildingDetails
	case models.SectionBuildingValuation:
		return models.MapKeyedList(s.buildingValuation, BuildingValuationView)
	case models.SectionFlatValuation:
		return FlatValuationView(s.flatValuation)
	}
	return nil
}

func (s *Session) reducePropertyDocs(ev models.FieldEvent) (models.KeyedList[models.PropertyDocument], int, error) {
	list := s.propertyDocs
	switch ev.Action {
	case models.ActionAdd, models.ActionRemove:
		return reduceList[models.PropertyDocument](list, ev, models.PropertyDocument{}, nil)
	case models.ActionGenerate:
		key, err := rowKey(ev)
		if err != nil {
			return list, 0, err
		}
		next, err := updateRow(list, key, func(d models.PropertyDocument) (models.PropertyDocument, error) {
			sentence, err := GenerateSentence(d)
			if err != nil {
				return d, err
			}
			d.Sentence = sentence
			return d, nil
		})
		return next, key, err
	}
	return reduceList(list, ev, models.PropertyDocument{}, func(d models.PropertyDocument, field string, raw any) (models.PropertyDocument, error) {
		if field != "type" {
			return SetDocumentField(d, field, raw)
		}
		value := utils.ToString(raw)
		if value == "" {
			return SelectDocumentType(""), nil
		}
		t, err := ParseDocumentType(value)
		if err != nil {
			return d, err
		}
		return SelectDocumentType(t), nil
	})
}

// reduceUtilityBills adds a validated bill (Value is the bill draft including "type") or
// removes one by key. Saved bills are not edited in place.
func reduceUtilityBills(list models.KeyedList[models.UtilityBill], ev models.FieldEvent) (models.KeyedList[models.UtilityBill], int, error) {
	switch ev.Action {
	case models.ActionAdd:
		draft, ok := ev.Value.(map[string]any)
		if !ok {
			return list, 0, &MissingFieldsError{Message: billMessage, Fields: []string{"type"}}
		}
		kind, err := ParseUtilityKind(utils.ToString(draft["type"]))
		if err != nil {
			return list, 0, err
		}
		bill, err := NewUtilityBill(kind, draft)
		if err != nil {
			return list, 0, err
		}
		next, key := list.Add(bill)
		return next, key, nil
	case models.ActionRemove:
		return reduceList[models.UtilityBill](list, ev, nil, nil)
	}
	return list, 0, fmt.Errorf("%w: %s on %s", ErrUnknownAction, ev.Action, ev.Section)
}

func reducePropertyDetails(d models.PropertyDetails, ev models.FieldEvent) (models.PropertyDetails, int, error) {
	switch {
	case ev.Action == models.ActionGenerate:
		next, err := AutoFillFloors(d)
		return next, 0, err
	case ev.Action == models.ActionSet && ev.Row == nil:
		next, err := SetPropertyDetailsField(d, ev.Field, ev.Value)
		return next, 0, err
	}
	floors, key, err := reduceList(d.Floors, ev, models.Floor{}, SetFloorField)
	if err != nil {
		return d, 0, err
	}
	d.Floors = floors
	return withProgress(d), key, nil
}

func setText(cur string, ev models.FieldEvent) (string, error) {
	if ev.Action != models.ActionSet {
		return cur, fmt.Errorf("%w: %s on %s", ErrUnknownAction, ev.Action, ev.Section)
	}
	return utils.ToString(ev.Value), nil
}
