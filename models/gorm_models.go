package models

import (
	"time"

	"gorm.io/datatypes"
)

// GORM-compatible models with proper tags

// ValuationSubmissionGorm represents the valuation_submissions table with GORM tags
type ValuationSubmissionGorm struct {
	ID           string         `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	SessionID    string         `gorm:"column:session_id;not null;index" json:"session_id"`
	PropertyType string         `gorm:"column:property_type;not null" json:"property_type"`
	State        string         `gorm:"column:state;not null" json:"state"`
	District     string         `gorm:"column:district;not null;index" json:"district"`
	Mandal       string         `gorm:"column:mandal;not null" json:"mandal"`
	Village      string         `gorm:"column:village;not null" json:"village"`
	Record       datatypes.JSON `gorm:"column:record;type:jsonb;not null" json:"record"`
	SubmittedAt  time.Time      `gorm:"column:submitted_at;not null" json:"submitted_at"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for ValuationSubmissionGorm
func (ValuationSubmissionGorm) TableName() string {
	return "valuation_submissions"
}
