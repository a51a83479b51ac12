package scoring

import (
	"context"

	"call-quality-backend/internal/database/models"
)

//go:generate mockgen -source=scorer.go -destination=../mocks/scoring_mocks.go -package=mocks

// DimensionScore is the model's verdict on one rubric dimension
type DimensionScore struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Result is the structured quality assessment for one transcript
type Result struct {
	GeneralComment  string         `json:"general_comment"`
	TotalScore      float64        `json:"total_score"`
	Greeting        DimensionScore `json:"greeting"`
	Speech          DimensionScore `json:"speech"`
	Initiative      DimensionScore `json:"initiative"`
	Need            DimensionScore `json:"need"`
	Offer           DimensionScore `json:"offer"`
	Objection       DimensionScore `json:"objection"`
	Perseverance    DimensionScore `json:"perseverance"`
	Advantages      DimensionScore `json:"advantages"`
	Agreement       DimensionScore `json:"agreement"`
	ManagerResume   []string       `json:"resume_manager"`
	Recommendations []string       `json:"recommendations"`
}

// Dimension returns the verdict for one rubric dimension
func (r *Result) Dimension(d models.Dimension) DimensionScore {
	switch d {
	case models.DimensionGreeting:
		return r.Greeting
	case models.DimensionSpeech:
		return r.Speech
	case models.DimensionInitiative:
		return r.Initiative
	case models.DimensionNeed:
		return r.Need
	case models.DimensionOffer:
		return r.Offer
	case models.DimensionObjection:
		return r.Objection
	case models.DimensionPerseverance:
		return r.Perseverance
	case models.DimensionAdvantages:
		return r.Advantages
	case models.DimensionAgreement:
		return r.Agreement
	}
	return DimensionScore{}
}

// Scorer submits a transcript for quality assessment. A (nil, nil) answer
// means the model produced nothing usable this time and the caller should
// retry under its policy.
type Scorer interface {
	Score(ctx context.Context, transcript string) (*Result, error)
}
