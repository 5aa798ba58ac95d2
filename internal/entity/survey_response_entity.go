package entity

import (
	"time"

	"github.com/google/uuid"
)

// SurveyResponse is the one-time intake questionnaire for a user. Its
// existence gates access to the evaluation flow; it is never mutated.
type SurveyResponse struct {
	Id               uuid.UUID
	BrukerID         string
	SvarLengde       string
	SvarPresentasjon string
	SvarBakgrunn     string
	SvarViktigst     string
	SvarIrriterende  string
	CreatedAt        time.Time
}
