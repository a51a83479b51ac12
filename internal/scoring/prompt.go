package scoring

import (
	"fmt"
	"strings"

	"call-quality-backend/internal/database/models"
)

// systemPrompt instructs the model to act as a sales call QA reviewer and to
// answer with the exact JSON shape Result unmarshals.
const systemPrompt = `You are a quality assurance reviewer for a sales call center.
You receive the full transcript of one phone call between a manager and a client.
Evaluate the manager's performance and answer with a single JSON object, no prose
around it, using exactly this shape:

{
  "general_comment": "<overall assessment of the call>",
  "total_score": <overall quality 0-10, one decimal allowed>,
%s  "resume_manager": ["<short remark about the manager>", ...],
  "recommendations": ["<short actionable recommendation>", ...]
}

Score every dimension from 0 to 10 and justify each score in its comment.`

// dimensionHints describe what each rubric dimension measures
var dimensionHints = map[models.Dimension]string{
	models.DimensionGreeting:     "how the manager opened the call and introduced themselves",
	models.DimensionSpeech:       "clarity, pace and correctness of the manager's speech",
	models.DimensionInitiative:   "whether the manager led the conversation",
	models.DimensionNeed:         "how well the client's need was identified",
	models.DimensionOffer:        "quality and relevance of the offer made",
	models.DimensionObjection:    "handling of the client's objections",
	models.DimensionPerseverance: "persistence without pressuring the client",
	models.DimensionAdvantages:   "presentation of product and company advantages",
	models.DimensionAgreement:    "closing: next step or agreement reached",
}

// BuildSystemPrompt renders the rubric into the system message
func BuildSystemPrompt() string {
	var dims strings.Builder
	for _, d := range models.Dimensions() {
		dims.WriteString(fmt.Sprintf("  %q: {\"score\": <0-10>, \"comment\": \"<%s>\"},\n", string(d), dimensionHints[d]))
	}
	return fmt.Sprintf(systemPrompt, dims.String())
}
