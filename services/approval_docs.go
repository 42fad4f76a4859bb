package services

import (
	"fmt"
	"strings"

	"valuation/models"
	"valuation/utils"
)

// ReduceApprovalDocs applies an event to the approval-document rows. Field paths are
// "<building|land>.kind", "<building|land>.body", "<building|land>.<detail field>" and
// "<building|land>.buildings[.<building field>]" for the sanctioned building list, whose
// rows are addressed by SubRow. The returned keys are the row and sub-row touched.
func ReduceApprovalDocs(list models.KeyedList[models.ApprovalDocument], ev models.FieldEvent) (models.KeyedList[models.ApprovalDocument], int, int, error) {
	if ev.Field == "" {
		switch ev.Action {
		case models.ActionAdd:
			next, key := list.Add(models.ApprovalDocument{})
			return next, key, 0, nil
		case models.ActionRemove:
			key, err := rowKey(ev)
			if err != nil {
				return list, 0, 0, err
			}
			next, ok := list.Remove(key)
			if !ok {
				return list, 0, 0, fmt.Errorf("%w: approval document %d", ErrRowNotFound, key)
			}
			return next, key, 0, nil
		}
		return list, 0, 0, fmt.Errorf("%w: field required", ErrUnknownField)
	}

	key, err := rowKey(ev)
	if err != nil {
		return list, 0, 0, err
	}
	slot, rest, _ := strings.Cut(ev.Field, ".")
	if slot != "building" && slot != "land" {
		return list, 0, 0, fmt.Errorf("%w: %q", ErrUnknownField, ev.Field)
	}

	subKey := 0
	next, err := updateRow(list, key, func(doc models.ApprovalDocument) (models.ApprovalDocument, error) {
		choice := doc.Building
		if slot == "land" {
			choice = doc.Land
		}
		updated, sub, err := reduceSlot(choice, slot, rest, ev)
		if err != nil {
			return doc, err
		}
		subKey = sub
		if slot == "land" {
			doc.Land = updated
		} else {
			doc.Building = updated
		}
		return doc, nil
	})
	return next, key, subKey, err
}

func reduceSlot(choice models.ApprovalChoice, slot, field string, ev models.FieldEvent) (models.ApprovalChoice, int, error) {
	if field == "buildings" || strings.HasPrefix(field, "buildings.") {
		switch ev.Action {
		case models.ActionAdd:
			return AddSanctionedBuilding(choice)
		case models.ActionRemove:
			sub, err := subRowKey(ev)
			if err != nil {
				return choice, 0, err
			}
			next, err := RemoveSanctionedBuilding(choice, sub)
			return next, sub, err
		case models.ActionSet, "":
			sub, err := subRowKey(ev)
			if err != nil {
				return choice, 0, err
			}
			next, err := SetSanctionedBuildingField(choice, sub, strings.TrimPrefix(field, "buildings."), ev.Value)
			return next, sub, err
		}
		return choice, 0, fmt.Errorf("%w: %s on %s", ErrUnknownAction, ev.Action, ev.Field)
	}

	if ev.Action != models.ActionSet && ev.Action != "" {
		return choice, 0, fmt.Errorf("%w: %s on %s", ErrUnknownAction, ev.Action, ev.Field)
	}
	value := utils.ToString(ev.Value)
	switch field {
	case "kind":
		if strings.TrimSpace(value) == "" {
			return models.ApprovalChoice{}, 0, nil
		}
		kind, err := ParseApprovalKind(value)
		if err != nil {
			return choice, 0, err
		}
		if !kindInSlot(kind, slot) {
			return choice, 0, fmt.Errorf("%w: %s is not a %s approval", ErrUnknownApprovalKind, kind, slot)
		}
		next, err := SelectApprovalKind(kind)
		return next, 0, err
	case "body":
		body, err := ParseIssuingBody(value)
		if err != nil {
			return choice, 0, err
		}
		next, err := SelectIssuingBody(choice, body)
		return next, 0, err
	}
	next, err := SetApprovalField(choice, field, ev.Value)
	return next, 0, err
}

func kindInSlot(kind models.ApprovalKind, slot string) bool {
	kinds := models.BuildingApprovalKinds
	if slot == "land" {
		kinds = models.LandApprovalKinds
	}
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
