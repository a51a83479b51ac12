package models

import "time"

// Commentary holds the free-text justification for each of the nine rubric
// dimensions, one row per call. Write-once like Evaluation.
type Commentary struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CallID       string    `json:"call_id" gorm:"size:32;uniqueIndex;not null"`
	Greeting     string    `json:"greeting" gorm:"size:1024"`
	Speech       string    `json:"speech" gorm:"size:1024"`
	Initiative   string    `json:"initiative" gorm:"size:1024"`
	Need         string    `json:"need" gorm:"size:1024"`
	Offer        string    `json:"offer" gorm:"size:1024"`
	Objection    string    `json:"objection" gorm:"size:1024"`
	Perseverance string    `json:"perseverance" gorm:"size:1024"`
	Advantages   string    `json:"advantages" gorm:"size:1024"`
	Agreement    string    `json:"agreement" gorm:"size:1024"`
	CreatedAt    time.Time `json:"created_at"`

	Call *CallRecord `json:"-" gorm:"foreignKey:CallID;references:CallID"`
}

// TableName returns the table name for Commentary
func (Commentary) TableName() string {
	return "commentary"
}

// Comment returns the stored comment for a rubric dimension
func (c *Commentary) Comment(d Dimension) string {
	switch d {
	case DimensionGreeting:
		return c.Greeting
	case DimensionSpeech:
		return c.Speech
	case DimensionInitiative:
		return c.Initiative
	case DimensionNeed:
		return c.Need
	case DimensionOffer:
		return c.Offer
	case DimensionObjection:
		return c.Objection
	case DimensionPerseverance:
		return c.Perseverance
	case DimensionAdvantages:
		return c.Advantages
	case DimensionAgreement:
		return c.Agreement
	}
	return ""
}
