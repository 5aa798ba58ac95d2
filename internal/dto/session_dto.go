package dto

// SessionState mirrors where a participant is in the flow. AWAITING_IDENTITY
// never leaves the client: every request here already carries an identifier.
type SessionState string

const (
	StateAwaitingSurvey SessionState = "AWAITING_SURVEY"
	StateEvaluating     SessionState = "EVALUATING"
	StateComplete       SessionState = "COMPLETE"
)

type SessionStateResponse struct {
	State      SessionState            `json:"state"`
	Survey     *IntakeSurveyResponse   `json:"survey,omitempty"`
	Evaluation *CurrentArticleResponse `json:"evaluation,omitempty"`
}

type IntakeSurveyResponse struct {
	Questions []IntakeQuestionResponse `json:"questions"`
}

type IntakeQuestionResponse struct {
	Key     string   `json:"key"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}
