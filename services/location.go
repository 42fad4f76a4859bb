package services

import "valuation/models"

// GeoLookup answers child lookups in the state hierarchy. Unknown parents yield an empty list.
type GeoLookup interface {
	States() []string
	Districts(state string) []string
	Mandals(state, district string) []string
	Villages(state, district, mandal string) []string
}

// OnSelect sets the value at level, recomputes the options of the level below from the hierarchy
// and clears every deeper selection and option list. It never fails: unknown or empty values
// simply have no children.
func OnSelect(h GeoLookup, cur models.GeoSelection, level models.GeoLevel, value string) models.GeoSelection {
	next := cur
	switch level {
	case models.LevelState:
		next.State = value
		next.District, next.Mandal, next.Village = "", "", ""
		next.Districts = children(value != "", func() []string { return h.Districts(value) })
		next.Mandals, next.Villages = []string{}, []string{}
	case models.LevelDistrict:
		next.District = value
		next.Mandal, next.Village = "", ""
		next.Mandals = children(value != "", func() []string { return h.Mandals(cur.State, value) })
		next.Villages = []string{}
	case models.LevelMandal:
		next.Mandal = value
		next.Village = ""
		next.Villages = children(value != "", func() []string { return h.Villages(cur.State, cur.District, value) })
	case models.LevelVillage:
		next.Village = value
	default:
		return cur
	}
	next.Districts = nonNil(next.Districts)
	next.Mandals = nonNil(next.Mandals)
	next.Villages = nonNil(next.Villages)
	return next
}

// ReplaySelection rebuilds sel from the state level down, so every option list comes from the
// hierarchy rather than from the caller. Replay stops at the first empty level.
func ReplaySelection(h GeoLookup, sel models.GeoSelection) models.GeoSelection {
	next := OnSelect(h, models.EmptyGeoSelection(), models.LevelState, sel.State)
	for _, step := range []struct {
		level models.GeoLevel
		value string
	}{
		{models.LevelDistrict, sel.District},
		{models.LevelMandal, sel.Mandal},
		{models.LevelVillage, sel.Village},
	} {
		if next.State == "" || step.value == "" {
			break
		}
		next = OnSelect(h, next, step.level, step.value)
	}
	return next
}

func children(ok bool, lookup func() []string) []string {
	if !ok {
		return []string{}
	}
	found := lookup()
	out := make([]string, len(found))
	copy(out, found)
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
