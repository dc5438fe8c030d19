package entity

import "time"

type RequestKind string

const (
	RequestKindExplain RequestKind = "EXPLAIN"
	RequestKindQuiz    RequestKind = "QUIZ"
)

// HistoryRecord is an audit row for one handled request. Records are only
// written, never read back by the handlers.
type HistoryRecord struct {
	ID          string
	Kind        RequestKind
	Input       string
	Language    string
	OutputChars int
	Failed      bool
	CreatedAt   time.Time
}
