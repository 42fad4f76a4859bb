package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuation/models"
)

func TestGenerateSentenceAOS(t *testing.T) {
	doc := SelectDocumentType(models.DocumentAOS)
	for field, value := range map[string]string{"aos_date": "2023-01-15", "seller": "R. Rao", "purchaser": "S. Devi"} {
		var err error
		doc, err = SetDocumentField(doc, field, value)
		require.NoError(t, err)
	}
	sentence, err := GenerateSentence(doc)
	require.NoError(t, err)
	assert.Equal(t, "Copy of AOS dated: 2023-01-15, executed in between R. Rao and S. Devi", sentence)
}

func TestGenerateSentenceDeed(t *testing.T) {
	doc := SelectDocumentType(models.DocumentSaleDeed)
	doc, err := SetDocumentField(doc, "reg_date", "2020-03-02")
	require.NoError(t, err)
	doc, err = SetDocumentField(doc, "owner", "K. Reddy")
	require.NoError(t, err)

	sentence, err := GenerateSentence(doc)
	require.NoError(t, err)
	assert.Equal(t, "Copy of SALE DEED dated: 2020-03-02, in favor of K. Reddy", sentence)
}

func TestGenerateSentenceMissingFields(t *testing.T) {
	doc, err := SetDocumentField(SelectDocumentType(models.DocumentGiftDeed), "owner", "K. Reddy")
	require.NoError(t, err)

	_, err = GenerateSentence(doc)
	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "Please fill in all required fields to generate the sentence.", missingErr.Message)
	assert.Equal(t, []string{"reg_date"}, missingErr.Fields)

	_, err = GenerateSentence(models.PropertyDocument{})
	assert.ErrorAs(t, err, &missingErr)
}

func TestSelectDocumentTypeDiscardsDetails(t *testing.T) {
	doc, err := SetDocumentField(SelectDocumentType(models.DocumentAOS), "seller", "R. Rao")
	require.NoError(t, err)

	doc = SelectDocumentType(models.DocumentAnyDeed)
	assert.Equal(t, models.PropertyDocument{Type: models.DocumentAnyDeed, Details: models.RegisteredDeed{}}, doc)

	_, err = SetDocumentField(doc, "seller", "R. Rao")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = SetDocumentField(models.PropertyDocument{}, "owner", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestNewUtilityBill(t *testing.T) {
	bill, err := NewUtilityBill(models.UtilityElectricity, map[string]any{
		"sc_no": "101", "usc_no": "2002", "house_no": "8-2-293", "name": "K. Reddy", "paid_to": "TGSPDCL",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UtilityElectricity, bill.UtilityKind())

	_, err = NewUtilityBill(models.UtilityElectricity, map[string]any{
		"sc_no": "101", "usc_no": "2002", "house_no": "8-2-293", "name": "K. Reddy", "paid_to": "NOBODY",
	})
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = NewUtilityBill(models.UtilityWater, map[string]any{"can_no": "55", "name": " "})
	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"house_no", "name"}, missingErr.Fields)

	_, err = ParseUtilityKind("gas")
	assert.ErrorIs(t, err, ErrUnknownUtility)
}

func TestAutoFillFloors(t *testing.T) {
	d, err := AutoFillFloors(models.PropertyDetails{UnitsPerFloor: "2, 2,1"})
	require.NoError(t, err)
	assert.Equal(t, 5, d.TotalUnits)
	assert.Equal(t, 3, d.NumFloors)

	names := []string{}
	for _, f := range d.Floors.Values() {
		names = append(names, f.FloorName)
		assert.Nil(t, f.Progress)
	}
	assert.Equal(t, []string{"Floor 1", "Floor 2", "Floor 3"}, names)

	_, err = AutoFillFloors(models.PropertyDetails{})
	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "Enter units per floor in comma separated format first", missingErr.Message)
}

func TestProgressFollowsConstructionStage(t *testing.T) {
	d, err := AutoFillFloors(models.PropertyDetails{UnitsPerFloor: "1,x"})
	require.NoError(t, err)
	assert.Equal(t, 1, d.TotalUnits)

	d, err = SetPropertyDetailsField(d, "stage_construction", models.StageUnderConstruction)
	require.NoError(t, err)
	for _, f := range d.Floors.Values() {
		require.NotNil(t, f.Progress)
		assert.Equal(t, 0, *f.Progress)
	}

	f, err := SetFloorField(models.Floor{}, "progress", 140)
	require.NoError(t, err)
	assert.Equal(t, 100, *f.Progress)

	d, err = SetPropertyDetailsField(d, "stage_construction", "Completed")
	require.NoError(t, err)
	for _, f := range d.Floors.Values() {
		assert.Nil(t, f.Progress)
	}
}

func TestReduceOnlineChecks(t *testing.T) {
	checks := models.OnlineChecks{}
	checks, err := ReduceOnlineChecks(checks, models.FieldEvent{Action: models.ActionAdd, Field: "ec", Value: []any{"ec-2024.pdf", "ec-2023.pdf"}})
	require.NoError(t, err)
	next, err := ReduceOnlineChecks(checks, models.FieldEvent{Action: models.ActionRemove, Field: "ec", Value: "ec-2023.pdf"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ec-2024.pdf"}, next["ec"])
	assert.Equal(t, []string{"ec-2024.pdf", "ec-2023.pdf"}, checks["ec"])

	_, err = ReduceOnlineChecks(checks, models.FieldEvent{Field: "tax"})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSiteDataLocksInspectionDate(t *testing.T) {
	s, err := SetSiteData(models.SiteDataReview{}, "inspection_completed", true, "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", s.InspectionDate)

	s, err = SetSiteData(s, "inspection_completed", false, "2024-05-11")
	require.NoError(t, err)
	s, err = SetSiteData(s, "inspection_completed", "yes", "2024-05-12")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", s.InspectionDate)

	assert.Equal(t, DefaultSiteObservations, SiteDataView(s, DefaultSiteObservations).Observations)
	s.InspectionCompleted = false
	assert.Nil(t, SiteDataView(s, DefaultSiteObservations).Observations)
}
