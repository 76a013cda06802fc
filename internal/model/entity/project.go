package entity

import (
	"time"
)

// Project is a saved irrigation design project. It stores the raw inputs plus
// a snapshot of the latest computed metrics so lists and dashboards do not
// re-run the engine.
type Project struct {
	ID       string `json:"id" gorm:"primaryKey;size:36"`
	Name     string `json:"name" gorm:"size:128;not null"`
	Location string `json:"location" gorm:"size:128"`
	Crop     string `json:"crop" gorm:"size:64"`

	AreaValue float64 `json:"area_value" gorm:"type:decimal(15,4)"`
	AreaUnit  string  `json:"area_unit" gorm:"size:16;not null;default:rai"`

	// Latest design metrics snapshot.
	DemandLday       float64 `json:"demand_lday" gorm:"type:decimal(18,4)"`
	TotalPipeLengthM float64 `json:"total_pipe_length_m" gorm:"type:decimal(15,4)"`
	HeadLossPct      float64 `json:"head_loss_pct" gorm:"type:decimal(8,4)"`
	MaxLateralM      float64 `json:"max_lateral_m" gorm:"type:decimal(15,4)"`
	TotalCost        float64 `json:"total_cost" gorm:"type:decimal(15,2)"`
	ValidationOk     bool    `json:"validation_ok"`

	// Inputs behind the snapshot.
	Kc             float64 `json:"kc" gorm:"type:decimal(6,3)"`
	ETo            float64 `json:"eto" gorm:"type:decimal(8,3)"`
	Rainfall       float64 `json:"rainfall" gorm:"type:decimal(8,3)"`
	MainDiameterMm float64 `json:"main_diameter_mm" gorm:"type:decimal(8,2)"`

	LastUpdated *time.Time `json:"last_updated"`
	CreatedBy   string     `json:"created_by" gorm:"size:36"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}
