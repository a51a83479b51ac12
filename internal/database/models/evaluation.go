package models

import "time"

// Evaluation holds the numeric score for each of the nine rubric dimensions,
// one row per call. Write-once: the unique index on call_id rejects a second
// insert without touching the stored scores.
type Evaluation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CallID       string    `json:"call_id" gorm:"size:32;uniqueIndex;not null"`
	Greeting     int       `json:"greeting"`
	Speech       int       `json:"speech"`
	Initiative   int       `json:"initiative"`
	Need         int       `json:"need"`
	Offer        int       `json:"offer"`
	Objection    int       `json:"objection"`
	Perseverance int       `json:"perseverance"`
	Advantages   int       `json:"advantages"`
	Agreement    int       `json:"agreement"`
	CreatedAt    time.Time `json:"created_at"`

	Call *CallRecord `json:"-" gorm:"foreignKey:CallID;references:CallID"`
}

// TableName returns the table name for Evaluation
func (Evaluation) TableName() string {
	return "evaluations"
}

// Score returns the stored score for a rubric dimension
func (e *Evaluation) Score(d Dimension) int {
	switch d {
	case DimensionGreeting:
		return e.Greeting
	case DimensionSpeech:
		return e.Speech
	case DimensionInitiative:
		return e.Initiative
	case DimensionNeed:
		return e.Need
	case DimensionOffer:
		return e.Offer
	case DimensionObjection:
		return e.Objection
	case DimensionPerseverance:
		return e.Perseverance
	case DimensionAdvantages:
		return e.Advantages
	case DimensionAgreement:
		return e.Agreement
	}
	return 0
}
