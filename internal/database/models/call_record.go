package models

import (
	"time"
)

// CallRecord represents one phone call pulled from the Bitrix24 telephony
// statistics, one row per call. The three nullable status columns carry the
// pipeline state: NULL means the stage has not completed yet, StageStatusDone
// means it has. Columns advance monotonically and are never reverted.
type CallRecord struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	CallID         string        `json:"call_id" gorm:"size:32;uniqueIndex;not null"`
	DealStage      *string       `json:"deal_stage,omitempty" gorm:"column:stage;size:64"`
	ManagerID      int           `json:"manager_id" gorm:"not null;index"`
	PortalUserName *string       `json:"portal_user_name,omitempty" gorm:"size:256"`
	RecordFileID   string        `json:"record_file_id" gorm:"size:32"`
	Direction      CallDirection `json:"direction" gorm:"column:type;size:64"`
	StartedAt      time.Time     `json:"started_at" gorm:"column:date"`
	Timezone       string        `json:"timezone" gorm:"size:64"`
	Duration       int           `json:"duration"`
	DurationVisual string        `json:"duration_visual" gorm:"size:64"`
	DealID         *string       `json:"deal_id,omitempty" gorm:"size:32"`
	CRMEntityType  CRMEntityType `json:"crm_entity_type" gorm:"size:32"`
	CRMEntityID    string        `json:"crm_entity_id" gorm:"size:32"`
	CRMActivityID  string        `json:"crm_activity_id" gorm:"size:32"`
	PortalNumber   string        `json:"portal_number" gorm:"size:64"`
	PhoneNumber    string        `json:"phone_number" gorm:"size:64"`
	DealURL        *string       `json:"deal_url,omitempty" gorm:"size:512"`
	FileName       *string       `json:"file_name,omitempty" gorm:"size:256"`

	SendStatus       *StageStatus `json:"send_status,omitempty" gorm:"size:32"`
	TranscribeStatus *StageStatus `json:"transcribe_status,omitempty" gorm:"size:32"`
	AnalysisStatus   *StageStatus `json:"analysis_status,omitempty" gorm:"size:32"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *PortalUser `json:"-" gorm:"foreignKey:ManagerID;references:ManagerID"`
}

// TableName returns the table name for CallRecord
func (CallRecord) TableName() string {
	return "b24_calls"
}

// StatusFor returns the status column value for a stage
func (c *CallRecord) StatusFor(stage Stage) *StageStatus {
	switch stage {
	case StageTranscribe:
		return c.TranscribeStatus
	case StageAnalysis:
		return c.AnalysisStatus
	case StageSend:
		return c.SendStatus
	}
	return nil
}

// Sent reports whether the record reached the terminal state
func (c *CallRecord) Sent() bool {
	return c.SendStatus != nil
}
