package services

import (
	"errors"
	"strings"

	"valuation/models"
)

const submitMessage = "Please fill all required fields before submitting"

var ErrDateOrder = errors.New(DateOrderMessage)

// Validate lists every missing required field. A date-ordering error blocks submission even
// though it never blocks input.
func (s *Session) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validate()
}

func (s *Session) validate() error {
	sel := s.location.Selection
	fields := map[string]string{
		"basic.property_type":   string(s.basic.PropertyType),
		"basic.inspection_date": s.basic.InspectionDate,
		"basic.valuation_date":  s.basic.ValuationDate,
		"location.state":        sel.State,
		"location.district":     sel.District,
		"location.mandal":       sel.Mandal,
		"location.village":      sel.Village,
		"location.sy_nos":       s.location.SyNos,
		"location.plot_no":      s.location.PlotNo,
		"location.pincode":      s.location.Pincode,
	}
	order := []string{
		"basic.property_type", "basic.inspection_date", "basic.valuation_date",
		"location.state", "location.district", "location.mandal", "location.village",
		"location.sy_nos", "location.plot_no", "location.pincode",
	}
	for _, c := range models.OnlineCheckCategories {
		key := "onlineChecks." + c.ID
		fields[key] = strings.Join(s.onlineChecks[c.ID], ",")
		order = append(order, key)
	}
	if err := missing(submitMessage, fields, order...); err != nil {
		return err
	}
	if s.basic.DateError != "" {
		return ErrDateOrder
	}
	return nil
}

// Submission validates the form and returns the record restricted to the sections of the
// selected property type. Every applicable section is projected fresh, including ones never touched.
func (s *Session) Submission() (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.validate(); err != nil {
		return models.Submission{}, err
	}
	record := models.FormRecord{}
	for _, section := range models.SectionsFor(s.basic.PropertyType) {
		record[section] = s.view(section)
	}
	sel := s.location.Selection
	return models.Submission{
		SessionID:    s.id,
		PropertyType: s.basic.PropertyType,
		State:        sel.State,
		District:     sel.District,
		Mandal:       sel.Mandal,
		Village:      sel.Village,
		Record:       record,
		SubmittedAt:  s.now(),
	}, nil
}
