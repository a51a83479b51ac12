package models

// Stage identifies one of the three status columns on a call record
type Stage string

const (
	StageTranscribe Stage = "transcribe"
	StageAnalysis   Stage = "analysis"
	StageSend       Stage = "send"
)

// IsValid checks if the Stage is valid
func (s Stage) IsValid() bool {
	switch s {
	case StageTranscribe, StageAnalysis, StageSend:
		return true
	}
	return false
}

// Column returns the b24_calls status column the stage advances
func (s Stage) Column() string {
	switch s {
	case StageTranscribe:
		return "transcribe_status"
	case StageAnalysis:
		return "analysis_status"
	case StageSend:
		return "send_status"
	}
	return ""
}

// StageStatus is the value written into a status column once a stage completes.
// A NULL column means the stage is still pending; the columns only ever move
// from NULL to done, never back.
type StageStatus string

const (
	StageStatusDone StageStatus = "done"
)

// CRMEntityType is the Bitrix entity kind a call is attached to
type CRMEntityType string

const (
	CRMEntityLead    CRMEntityType = "LEAD"
	CRMEntityContact CRMEntityType = "CONTACT"
	CRMEntityCompany CRMEntityType = "COMPANY"
)

// IsValid checks if the CRMEntityType is valid
func (t CRMEntityType) IsValid() bool {
	switch t {
	case CRMEntityLead, CRMEntityContact, CRMEntityCompany:
		return true
	}
	return false
}

// CallDirection distinguishes inbound and outbound calls
type CallDirection string

const (
	DirectionOutbound CallDirection = "outbound"
	DirectionInbound  CallDirection = "inbound"
)

// DirectionFromBitrix maps the voximplant CALL_TYPE code to a direction.
// Unknown codes are passed through as-is, matching the source behavior.
func DirectionFromBitrix(callType string) CallDirection {
	switch callType {
	case "1":
		return DirectionOutbound
	case "2":
		return DirectionInbound
	}
	return CallDirection(callType)
}

// Dimension is one of the nine fixed quality rubric dimensions scored per call
type Dimension string

const (
	DimensionGreeting     Dimension = "greeting"
	DimensionSpeech       Dimension = "speech"
	DimensionInitiative   Dimension = "initiative"
	DimensionNeed         Dimension = "need"
	DimensionOffer        Dimension = "offer"
	DimensionObjection    Dimension = "objection"
	DimensionPerseverance Dimension = "perseverance"
	DimensionAdvantages   Dimension = "advantages"
	DimensionAgreement    Dimension = "agreement"
)

// Dimensions lists the rubric dimensions in scoring order
func Dimensions() []Dimension {
	return []Dimension{
		DimensionGreeting,
		DimensionSpeech,
		DimensionInitiative,
		DimensionNeed,
		DimensionOffer,
		DimensionObjection,
		DimensionPerseverance,
		DimensionAdvantages,
		DimensionAgreement,
	}
}
