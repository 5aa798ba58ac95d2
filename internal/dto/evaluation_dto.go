package dto

type ArticleResponse struct {
	UUID         string `json:"uuid"`
	Title        string `json:"title"`
	Byline       string `json:"byline"`
	CreationDate string `json:"creation_date"`
	LeadText     string `json:"lead_text"`
	BodyText     string `json:"artikkeltekst"`
}

// SummaryPanelResponse is one collapsible summary panel: the source label,
// the raw text, and the parsed bullet items when the text was a list literal.
type SummaryPanelResponse struct {
	Kilde   string   `json:"kilde"`
	Tekst   string   `json:"tekst"`
	Punkter []string `json:"punkter,omitempty"`
}

type CurrentArticleResponse struct {
	Position    int                    `json:"position"` // 1-based, for the progress header
	Total       int                    `json:"total"`
	Article     ArticleResponse        `json:"article"`
	Summaries   []SummaryPanelResponse `json:"summaries"` // in display order
	RankOptions []string               `json:"rank_options"`
}

type SubmitEvaluationRequest struct {
	BrukerID    string            `json:"bruker_id" validate:"required"`
	Rangeringer map[string]string `json:"rangeringer" validate:"required,min=1"`
	Kommentar   string            `json:"kommentar"`
}

type SubmitEvaluationResponse struct {
	State    SessionState `json:"state"`
	Position int          `json:"position"` // next 1-based position, or Total when complete
	Total    int          `json:"total"`
}
