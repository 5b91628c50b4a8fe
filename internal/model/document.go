package model

// DocumentSummary is a list entry from GET /documents/
type DocumentSummary struct {
	DocumentID int    `json:"document_id"`
	Title      string `json:"title"`
	UpdatedAt  string `json:"updated_at"` // RFC 3339, display-only
	UserID     int    `json:"user_id"`
}

// DocumentDetail is the full document from GET /documents/{id}/
type DocumentDetail struct {
	DocumentID int    `json:"document_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	UserID     int    `json:"user_id"`
	CreatedAt  string `json:"created_at"` // RFC 3339, display-only
	UpdatedAt  string `json:"updated_at"`
}

// DocumentPayload carries title/content for create and update calls
type DocumentPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Sentence is one backend-segmented span of a document, with the offsets
// that were valid at the time of the most recent analysis run
type Sentence struct {
	SentenceID int     `json:"sentence_id"`
	Content    string  `json:"content"`     // Text as segmented by the backend
	StartIndex int     `json:"start_index"` // Offset into document content at analysis time
	EndIndex   int     `json:"end_index"`   // StartIndex <= EndIndex; stale after edits
	Flags      bool    `json:"flags"`       // Backend's flagged/unflagged verdict
	Confidence float64 `json:"confidence"`  // Externally defined range, not validated
}

// Correction is a backend-proposed replacement for a sentence
type Correction struct {
	CorrectionID int    `json:"correction_id"`
	Suggested    string `json:"suggested_correction"`
	Reasoning    string `json:"reasoning"` // May be empty
	Sources      string `json:"sources"`   // JSON array or delimited string; see highlight.ParseSources
	CreatedAt    string `json:"created_at"`
}

// SentenceAnalysis joins a sentence with its corrections for one analysis run
type SentenceAnalysis struct {
	Sentence
	Corrections []Correction `json:"corrections"`
}

// Flagged reports whether the sentence should render as an interactive
// highlight: either the backend flagged it or it carries corrections.
func (s SentenceAnalysis) Flagged() bool {
	return s.Flags || len(s.Corrections) > 0
}
