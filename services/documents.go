package services

import (
	"fmt"
	"strings"

	"valuation/models"
	"valuation/utils"
)

const generateSentenceMessage = "Please fill in all required fields to generate the sentence."

func ParseDocumentType(s string) (models.DocumentType, error) {
	s = strings.TrimSpace(s)
	for _, t := range models.DocumentTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, s)
}

// SelectDocumentType resets a document row to an empty payload of the new type.
func SelectDocumentType(t models.DocumentType) models.PropertyDocument {
	switch t {
	case models.DocumentAOS:
		return models.PropertyDocument{Type: t, Details: models.AgreementOfSale{}}
	case "":
		return models.PropertyDocument{}
	default:
		return models.PropertyDocument{Type: t, Details: models.RegisteredDeed{}}
	}
}

func SetDocumentField(doc models.PropertyDocument, field string, raw any) (models.PropertyDocument, error) {
	value := utils.ToString(raw)
	switch d := doc.Details.(type) {
	case models.AgreementOfSale:
		switch field {
		case "seller":
			d.Seller = value
		case "purchaser":
			d.Purchaser = value
		case "aos_date":
			d.AOSDate = value
		case "sale_consideration":
			d.SaleConsideration = value
		default:
			return doc, fmt.Errorf("%w: %q for %s", ErrUnknownField, field, doc.Type)
		}
		doc.Details = d
	case models.RegisteredDeed:
		switch field {
		case "owner":
			d.Owner = value
		case "doc_no":
			d.DocNo = value
		case "reg_date":
			d.RegDate = value
		case "sro_name":
			d.SROName = value
		default:
			return doc, fmt.Errorf("%w: %q for %s", ErrUnknownField, field, doc.Type)
		}
		doc.Details = d
	default:
		return doc, fmt.Errorf("%w: select a document type first", ErrUnknownField)
	}
	return doc, nil
}

// GenerateSentence renders the certified-copy line for a document row.
func GenerateSentence(doc models.PropertyDocument) (string, error) {
	switch d := doc.Details.(type) {
	case models.AgreementOfSale:
		if err := missing(generateSentenceMessage, map[string]string{
			"aos_date": d.AOSDate, "seller": d.Seller, "purchaser": d.Purchaser,
		}, "aos_date", "seller", "purchaser"); err != nil {
			return "", err
		}
		return fmt.Sprintf("Copy of AOS dated: %s, executed in between %s and %s", d.AOSDate, d.Seller, d.Purchaser), nil
	case models.RegisteredDeed:
		if err := missing(generateSentenceMessage, map[string]string{
			"reg_date": d.RegDate, "owner": d.Owner,
		}, "reg_date", "owner"); err != nil {
			return "", err
		}
		return fmt.Sprintf("Copy of %s dated: %s, in favor of %s", doc.Type, d.RegDate, d.Owner), nil
	}
	return "", &MissingFieldsError{Message: generateSentenceMessage, Fields: []string{"type"}}
}
