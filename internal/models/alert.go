package models

import (
	"time"

	"gorm.io/datatypes"
)

type AlertRule struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	AlertType      string         `gorm:"size:32;index" json:"alertType"`
	ConditionsJSON datatypes.JSON `gorm:"type:json" json:"conditions"`
	IsActive       bool           `gorm:"index" json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type GeneratedAlert struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	AlertRuleID string         `gorm:"size:36;index" json:"alertRuleId"`
	Severity    string         `gorm:"size:16" json:"severity"`
	Message     string         `gorm:"size:1000" json:"message"`
	DataJSON    datatypes.JSON `gorm:"type:json" json:"data"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type DailyInsight struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	Type            string         `gorm:"size:32" json:"type"`
	Title           string         `gorm:"size:255" json:"title"`
	Content         string         `gorm:"type:text" json:"content"`
	Severity        string         `gorm:"size:16" json:"severity"`
	RelatedDataJSON datatypes.JSON `gorm:"type:json" json:"relatedData"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type ReorderRecommendation struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	ItemID              string    `gorm:"size:36;index" json:"itemId"`
	RecommendedQuantity int       `json:"recommendedQuantity"`
	Reasoning           string    `gorm:"type:text" json:"reasoning"`
	ConfidenceScore     int       `json:"confidenceScore"`
	Status              string    `gorm:"size:16" json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}
