package models

import (
	"encoding/json"
	"time"
)

// TranscriptSegment is one time-aligned fragment of a call transcript
type TranscriptSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// CallAnalysis holds the transcript and the scoring summary for one call,
// 1:1 with CallRecord. The transcription stage creates the row with the text
// fields; the analysis stage fills the scoring fields exactly once.
type CallAnalysis struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CallID          string          `json:"call_id" gorm:"size:32;uniqueIndex;not null"`
	Transcript      string          `json:"transcript" gorm:"column:transcribe_call;type:text"`
	Segments        json.RawMessage `json:"segments" gorm:"type:jsonb"`
	GeneralComment  *string         `json:"general_comment,omitempty" gorm:"type:text"`
	CallQuality     *float64        `json:"call_quality,omitempty" gorm:"type:numeric(4,1)"`
	ManagerResume   *string         `json:"manager_resume,omitempty" gorm:"type:text"`
	Recommendations *string         `json:"recommendations,omitempty" gorm:"type:text"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Call *CallRecord `json:"-" gorm:"foreignKey:CallID;references:CallID"`
}

// TableName returns the table name for CallAnalysis
func (CallAnalysis) TableName() string {
	return "call_analysis"
}

// DecodeSegments unmarshals the stored JSONB segment list
func (a *CallAnalysis) DecodeSegments() ([]TranscriptSegment, error) {
	if len(a.Segments) == 0 {
		return nil, nil
	}
	var segments []TranscriptSegment
	if err := json.Unmarshal(a.Segments, &segments); err != nil {
		return nil, err
	}
	return segments, nil
}
