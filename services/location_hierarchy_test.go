package services_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"valuation/models"
	"valuation/repository"
	"valuation/services"
)

func TestOnSelectResetOnBundledHierarchy(t *testing.T) {
	geo, err := repository.NewDefaultGeoRepository(time.Minute)
	require.NoError(t, err)

	sel := models.EmptyGeoSelection()
	for _, step := range []struct {
		level models.GeoLevel
		value string
	}{
		{models.LevelState, "Telangana"},
		{models.LevelDistrict, "Hyderabad"},
		{models.LevelMandal, "Kukatpally"},
		{models.LevelVillage, "Nizampet"},
	} {
		sel = services.OnSelect(geo, sel, step.level, step.value)
	}
	require.Equal(t, "Nizampet", sel.Village)
	require.Equal(t, []string{"Kukatpally", "Nizampet", "Bachupally", "Pragathi Nagar"}, sel.Villages)

	sel = services.OnSelect(geo, sel, models.LevelState, "Andhra Pradesh")

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
