// Package events defines the messages published on the in-process bus.
package events

// TopicEvaluationSaved carries EvaluationSaved messages.
const TopicEvaluationSaved = "evaluation.saved"

// EvaluationSaved is emitted after an article evaluation and its cursor bump
// have been committed. Consumers must tolerate at-least-once delivery.
type EvaluationSaved struct {
	BrukerID    string `json:"bruker_id"`
	ArticleUUID string `json:"uuid"`
	CursorPos   int    `json:"random_list_pos"`
	Total       int    `json:"total"`
}
