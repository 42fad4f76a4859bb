package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"valuation/models"
)

// fakeGeo is a two-state hierarchy keyed by parent path.
type fakeGeo struct{}

var fakeTree = map[string][]string{
	"":                                    {"Telangana", "Andhra Pradesh"},
	"Telangana":                           {"Hyderabad", "Rangareddy"},
	"Andhra Pradesh":                      {"Krishna"},
	"Telangana/Hyderabad":                 {"Serilingampally", "Kukatpally"},
	"Telangana/Rangareddy":                {"Shamshabad"},
	"Andhra Pradesh/Krishna":              {"Vijayawada Rural"},
	"Telangana/Hyderabad/Serilingampally": {"Kondapur", "Gachibowli"},
	"Telangana/Hyderabad/Kukatpally":      {"Nizampet"},
}

func (fakeGeo) States() []string {
	return fakeTree[""]
}

func (fakeGeo) Districts(s string) []string {
	return fakeTree[s]
}

func (fakeGeo) Mandals(s, d string) []string {
	return fakeTree[s+"/"+d]
}

func (fakeGeo) Villages(s, d, m string) []string {
	return fakeTree[s+"/"+d+"/"+m]
}

func selectPath(values ...string) models.GeoSelection {
	sel := models.EmptyGeoSelection()
	for i, v := range values {
		sel = OnSelect(fakeGeo{}, sel, models.GeoLevel(i), v)
	}
	return sel
}

func TestOnSelectCascades(t *testing.T) {
	sel := selectPath("Telangana", "Hyderabad", "Serilingampally", "Kondapur")

	want := models.GeoSelection{
		State:     "Telangana",
		District:  "Hyderabad",
		Mandal:    "Serilingampally",
		Village:   "Kondapur",
		Districts: []string{"Hyderabad", "Rangareddy"},
		Mandals:   []string{"Serilingampally", "Kukatpally"},
		Villages:  []string{"Kondapur", "Gachibowli"},
	}
	if diff := cmp.Diff(want, sel); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestOnSelectStateResetsDeeperLevels(t *testing.T) {
	sel := selectPath("Telangana", "Hyderabad", "Serilingampally", "Kondapur")
	sel = OnSelect(fakeGeo{}, sel, models.LevelState, "Andhra Pradesh")

	want := models.GeoSelection{
		State:     "Andhra Pradesh",
		Districts: []string{"Krishna"},
		Mandals:   []string{},
		Villages:  []string{},
	}
	if diff := cmp.Diff(want, sel); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaySelectionIgnoresPostedOptions(t *testing.T) {
	posted := models.GeoSelection{
		State:     "Telangana",
		District:  "Hyderabad",
		Mandal:    "Kukatpally",
		Districts: []string{"Atlantis"},
		Mandals:   []string{"Nowhere"},
		Villages:  []string{"Forged"},
	}

	got := OnSelect(fakeGeo{}, ReplaySelection(fakeGeo{}, posted), models.LevelVillage, "Nizampet")

	want := models.GeoSelection{
		State:     "Telangana",
		District:  "Hyderabad",
		Mandal:    "Kukatpally",
		Village:   "Nizampet",
		Districts: []string{"Hyderabad", "Rangareddy"},
		Mandals:   []string{"Serilingampally", "Kukatpally"},
		Villages:  []string{"Nizampet"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaySelectionStopsAtFirstEmptyLevel(t *testing.T) {
	posted := models.GeoSelection{State: "Telangana", Mandal: "Kukatpally", Village: "Nizampet"}

	want := models.GeoSelection{
		State:     "Telangana",
		Districts: []string{"Hyderabad", "Rangareddy"},
		Mandals:   []string{},
		Villages:  []string{},
	}
	if diff := cmp.Diff(want, ReplaySelection(fakeGeo{}, posted)); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(models.EmptyGeoSelection(), ReplaySelection(fakeGeo{}, models.GeoSelection{})); diff != "" {
		t.Errorf("empty selection mismatch (-want +got):\n%s", diff)
	}
}

func TestOnSelectDistrictKeepsState(t *testing.T) {
	sel := selectPath("Telangana", "Hyderabad", "Kukatpally", "Nizampet")
	sel = OnSelect(fakeGeo{}, sel, models.LevelDistrict, "Rangareddy")

	assert.Equal(t, "Telangana", sel.State)
	assert.Equal(t, []string{"Hyderabad", "Rangareddy"}, sel.Districts)
	assert.Equal(t, []string{"Shamshabad"}, sel.Mandals)
	assert.Empty(t, sel.Mandal)
	assert.Empty(t, sel.Village)
	assert.Equal(t, []string{}, sel.Villages)
}

func TestOnSelectIsIdempotent(t *testing.T) {
	once := selectPath("Telangana", "Hyderabad")
	twice := OnSelect(fakeGeo{}, once, models.LevelDistrict, "Hyderabad")
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("re-selecting changed the selection (-once +twice):\n%s", diff)
	}
}

func TestOnSelectUnknownValueHasNoChildren(t *testing.T) {
	sel := OnSelect(fakeGeo{}, models.EmptyGeoSelection(), models.LevelState, "Atlantis")
	assert.Equal(t, "Atlantis", sel.State)
	assert.NotNil(t, sel.Districts)
	assert.Empty(t, sel.Districts)

	cleared := OnSelect(fakeGeo{}, selectPath("Telangana"), models.LevelState, "")
	assert.Empty(t, cleared.State)
	assert.Empty(t, cleared.Districts)
}

func TestOnSelectDoesNotAliasLookupSlices(t *testing.T) {
	sel := selectPath("Telangana")
	sel.Districts[0] = "changed"
	assert.Equal(t, "Hyderabad", fakeTree["Telangana"][0])
}

func TestSetLocationFieldBoundaries(t *testing.T) {
	loc := models.LocationDetails{Selection: models.EmptyGeoSelection()}
	loc, err := SetLocationField(fakeGeo{}, loc, "state", "Telangana")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Hyderabad", "Rangareddy"}, loc.Selection.Districts)

	loc, err = SetLocationField(fakeGeo{}, loc, "land.boundaries.north", "Road")
	assert.NoError(t, err)
	loc, err = SetLocationField(fakeGeo{}, loc, "flat.dimensions.east", "12 ft")
	assert.NoError(t, err)
	assert.Equal(t, "Road", loc.Land.Boundaries.North)
	assert.Equal(t, "12 ft", loc.Flat.Dimensions.East)

	_, err = SetLocationField(fakeGeo{}, loc, "land.corners.north", "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	hidden := LocationView(loc, models.PropertyLandAndBuildings)
	assert.Nil(t, hidden.Flat)
	shown := LocationView(loc, models.PropertyFlat)
	assert.NotNil(t, shown.Apartment)
	assert.Equal(t, "12 ft", shown.Flat.Dimensions.East)
}
