package services

import (
	"fmt"
	"strings"

	"valuation/models"
	"valuation/utils"
)

const billMessage = "Please fill all required fields"

func ParseUtilityKind(s string) (models.UtilityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "electricity":
		return models.UtilityElectricity, nil
	case "water":
		return models.UtilityWater, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUtility, s)
}

// NewUtilityBill validates a bill draft. Every field of the bill type is required.
func NewUtilityBill(kind models.UtilityKind, draft map[string]any) (models.UtilityBill, error) {
	text := func(key string) string { return strings.TrimSpace(utils.ToString(draft[key])) }
	switch kind {
	case models.UtilityElectricity:
		fields := map[string]string{
			"sc_no": text("sc_no"), "usc_no": text("usc_no"), "house_no": text("house_no"),
			"name": text("name"), "paid_to": text("paid_to"),
		}
		if err := missing(billMessage, fields, "sc_no", "usc_no", "house_no", "name", "paid_to"); err != nil {
			return nil, err
		}
		if err := checkOption(fields["paid_to"], models.ElectricityPayees); err != nil {
			return nil, err
		}
		return models.ElectricityBill{
			Type:    kind,
			SCNo:    fields["sc_no"],
			USCNo:   fields["usc_no"],
			HouseNo: fields["house_no"],
			Name:    fields["name"],
			PaidTo:  fields["paid_to"],
		}, nil
	case models.UtilityWater:
		fields := map[string]string{"can_no": text("can_no"), "house_no": text("house_no"), "name": text("name")}
		if err := missing(billMessage, fields, "can_no", "house_no", "name"); err != nil {
			return nil, err
		}
		return models.WaterBill{Type: kind, CANNo: fields["can_no"], HouseNo: fields["house_no"], Name: fields["name"]}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownUtility, kind)
}
