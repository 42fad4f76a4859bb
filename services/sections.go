package services

import (
	"fmt"
	"strings"

	"valuation/models"
	"valuation/utils"
)

// DefaultSiteObservations are shown once the inspection is marked completed.
var DefaultSiteObservations = []string{
	"Structure: RCC framed building.",
	"No visible cracks observed in exterior.",
	"Site dimensions match deed records (with minor +/- 0.5% variance).",
}

func rowKey(ev models.FieldEvent) (int, error) {
	if ev.Row == nil {
		return 0, fmt.Errorf("%w: %s", ErrRowRequired, ev.Section)
	}
	return *ev.Row, nil
}

func subRowKey(ev models.FieldEvent) (int, error) {
	if ev.SubRow == nil {
		return 0, fmt.Errorf("%w: %s sub-row", ErrRowRequired, ev.Section)
	}
	return *ev.SubRow, nil
}

// updateRow applies a failing field update to one keyed row.
func updateRow[T any](list models.KeyedList[T], key int, fn func(T) (T, error)) (models.KeyedList[T], error) {
	current, ok := list.Get(key)
	if !ok {
		return list, fmt.Errorf("%w: %d", ErrRowNotFound, key)
	}
	next, err := fn(current)
	if err != nil {
		return list, err
	}
	list, _ = list.Update(key, func(T) T { return next })
	return list, nil
}

// reduceList handles add/remove for plain repeatable sections and delegates set to fn.
func reduceList[T any](list models.KeyedList[T], ev models.FieldEvent, blank T, set func(T, string, any) (T, error)) (models.KeyedList[T], int, error) {
	switch ev.Action {
	case models.ActionAdd:
		next, key := list.Add(blank)
		return next, key, nil
	case models.ActionRemove:
		key, err := rowKey(ev)
		if err != nil {
			return list, 0, err
		}
		next, ok := list.Remove(key)
		if !ok {
			return list, 0, fmt.Errorf("%w: %d", ErrRowNotFound, key)
		}
		return next, key, nil
	case models.ActionSet, "":
		key, err := rowKey(ev)
		if err != nil {
			return list, 0, err
		}
		next, err := updateRow(list, key, func(v T) (T, error) { return set(v, ev.Field, ev.Value) })
		return next, key, err
	}
	return list, 0, fmt.Errorf("%w: %s on %s", ErrUnknownAction, ev.Action, ev.Section)
}

func SetLandDetailsField(d models.LandDetails, field string, raw any) (models.LandDetails, error) {
	switch field {
	case "documented":
		d.Documented = utils.ToFloat(raw)
	case "planned":
		d.Planned = utils.ToFloat(raw)
	case "actual":
		d.Actual = utils.ToFloat(raw)
	case "gross_source":
		d.GrossSource = ParseGrossSource(utils.ToString(raw))
	case "affected_type":
		d.AffectedType = ParseAffectedType(utils.ToString(raw))
	case "road_affected":
		d.RoadAffected = utils.ToFloat(raw)
	case "nala_affected":
		d.NalaAffected = utils.ToFloat(raw)
	case "units":
		d.Units = utils.ToString(raw)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return d, nil
}

func SetLandValuationField(v models.LandValuation, field string, raw any) (models.LandValuation, error) {
	switch field {
	case "guideline_rate":
		v.GuidelineRate = utils.ToFloat(raw)
	case "unit_rate":
		v.UnitRate = utils.ToFloat(raw)
	default:
		return v, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return v, nil
}

func SetEnquiryField(e models.Enquiry, field string, raw any) (models.Enquiry, error) {
	switch field {
	case "per_sqyd":
		e.PerSqyd = utils.ToFloat(raw)
	case "plot_area":
		e.PlotArea = utils.ToFloat(raw)
	default:
		return e, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return e, nil
}

func SetBuildingDetailField(b models.BuildingDetail, field string, raw any) (models.BuildingDetail, error) {
	switch field {
	case "building":
		b.Building = utils.ToString(raw)
	case "floor_name":
		b.FloorName = utils.ToString(raw)
	case "type":
		b.Type = utils.ToString(raw)
	case "bua_plan":
		b.BUAPlan = utils.ToFloat(raw)
	case "bua_actual":
		b.BUAActual = utils.ToFloat(raw)
	case "permissible_area":
		b.PermissibleArea = utils.ToFloat(raw)
	case "area_considered":
		b.AreaConsidered = utils.ToFloat(raw)
	default:
		return b, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return b, nil
}

func SetBuildingValuationField(e models.BuildingValuationEntry, field string, raw any) (models.BuildingValuationEntry, error) {
	switch field {
	case "building":
		e.Building = utils.ToString(raw)
	case "floor":
		e.Floor = utils.ToString(raw)
	case "type":
		e.Type = utils.ToString(raw)
	case "area":
		e.Area = utils.ToFloat(raw)
	case "guideline_rate":
		e.GuidelineRate = utils.ToFloat(raw)
	case "unit_rate":
		e.UnitRate = utils.ToFloat(raw)
	case "replacement_cost":
		e.ReplacementCost = utils.ToFloat(raw)
	default:
		return e, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return e, nil
}

func SetFlatValuationField(v models.FlatValuation, field string, raw any) (models.FlatValuation, error) {
	switch field {
	case "flat_sbua":
		v.FlatSBUA = utils.ToFloat(raw)
	case "carpet_area":
		v.CarpetArea = utils.ToFloat(raw)
	case "flat_uds":
		v.FlatUDS = utils.ToFloat(raw)
	case "total_land_area":
		v.TotalLandArea = utils.ToFloat(raw)
	case "guideline_rate":
		v.GuidelineRate = utils.ToFloat(raw)
	case "unit_rate":
		v.UnitRate = utils.ToFloat(raw)
	case "replacement_cost":
		v.ReplacementCost = utils.ToFloat(raw)
	default:
		return v, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return v, nil
}

// SetLocationField updates the location section. Geographic levels go through OnSelect;
// boundary fields are addressed as "<land|apartment|flat>.<boundaries|dimensions>.<side>".
func SetLocationField(geo GeoLookup, loc models.LocationDetails, field string, raw any) (models.LocationDetails, error) {
	value := strings.TrimSpace(utils.ToString(raw))
	if level, ok := models.ParseGeoLevel(field); ok {
		loc.Selection = OnSelect(geo, loc.Selection, level, value)
		return loc, nil
	}
	switch field {
	case "sy_nos":
		loc.SyNos = value
	case "plot_no":
		loc.PlotNo = value
	case "building_name":
		loc.BuildingName = value
	case "house_no":
		loc.HouseNo = value
	case "pincode":
		loc.Pincode = value
	case "apartment_name":
		loc.ApartmentName = value
	case "flat_no":
		loc.FlatNo = value
	case "floor":
		loc.Floor = value
	default:
		return setBoundary(loc, field, value)
	}
	return loc, nil
}

func setBoundary(loc models.LocationDetails, field, value string) (models.LocationDetails, error) {
	parts := strings.Split(field, ".")
	unknown := fmt.Errorf("%w: %q", ErrUnknownField, field)
	if len(parts) != 3 {
		return loc, unknown
	}
	var set *models.BoundarySet
	switch parts[0] {
	case "land":
		set = &loc.Land
	case "apartment":
		if loc.Apartment == nil {
			loc.Apartment = &models.BoundarySet{}
		} else {
			cp := *loc.Apartment
			loc.Apartment = &cp
		}
		set = loc.Apartment
	case "flat":
		if loc.Flat == nil {
			loc.Flat = &models.BoundarySet{}
		} else {
			cp := *loc.Flat
			loc.Flat = &cp
		}
		set = loc.Flat
	default:
		return loc, unknown
	}
	var sides *models.Boundaries
	switch parts[1] {
	case "boundaries":
		sides = &set.Boundaries
	case "dimensions":
		sides = &set.Dimensions
	default:
		return loc, unknown
	}
	switch parts[2] {
	case "north":
		sides.North = value
	case "south":
		sides.South = value
	case "east":
		sides.East = value
	case "west":
		sides.West = value
	default:
		return loc, unknown
	}
	return loc, nil
}

// LocationView hides the apartment and flat boundaries unless the property is a flat.
func LocationView(loc models.LocationDetails, pt models.PropertyType) models.LocationDetails {
	if pt != models.PropertyFlat {
		loc.ApartmentName, loc.FlatNo, loc.Floor = "", "", ""
		loc.Apartment, loc.Flat = nil, nil
		return loc
	}
	if loc.Apartment == nil {
		loc.Apartment = &models.BoundarySet{}
	}
	if loc.Flat == nil {
		loc.Flat = &models.BoundarySet{}
	}
	return loc
}

// ReduceOnlineChecks adds, removes or replaces evidence file names of one category.
func ReduceOnlineChecks(checks models.OnlineChecks, ev models.FieldEvent) (models.OnlineChecks, error) {
	if !isCheckCategory(ev.Field) {
		return checks, fmt.Errorf("%w: online check %q", ErrUnknownField, ev.Field)
	}
	next := make(models.OnlineChecks, len(checks)+1)
	for k, v := range checks {
		next[k] = v
	}
	files := append([]string{}, checks[ev.Field]...)
	switch ev.Action {
	case models.ActionAdd:
		files = append(files, utils.ToStrings(ev.Value)...)
	case models.ActionRemove:
		drop := map[string]bool{}
		for _, f := range utils.ToStrings(ev.Value) {
			drop[f] = true
		}
		kept := files[:0]
		for _, f := range files {
			if !drop[f] {
				kept = append(kept, f)
			}
		}
		files = kept
	case models.ActionSet, "":
		files = utils.ToStrings(ev.Value)
	default:
		return checks, fmt.Errorf("%w: %s on %s", ErrUnknownAction, ev.Action, ev.Section)
	}
	next[ev.Field] = files
	return next, nil
}

func isCheckCategory(id string) bool {
	for _, c := range models.OnlineCheckCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// SetSiteData toggles inspection completion. The inspection date is fixed the first time
// the inspection is completed and kept across later toggles.
func SetSiteData(s models.SiteDataReview, field string, raw any, today string) (models.SiteDataReview, error) {
	if field != "inspection_completed" {
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	s.InspectionCompleted = utils.ToBool(raw)
	if s.InspectionCompleted && s.InspectionDate == "" {
		s.InspectionDate = today
	}
	return s, nil
}

func SiteDataView(s models.SiteDataReview, observations []string) models.SiteDataReview {
	if s.InspectionCompleted {
		s.Observations = append([]string{}, observations...)
	} else {
		s.Observations = nil
	}
	return s
}
