package models

import "github.com/workfree/pocket-lawyer/internal/types"

// LegalTemplate is a downloadable document template. Read-only after seed.
type LegalTemplate struct {
	ID          int                    `json:"id"`
	Title       string                 `json:"title"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Content     string                 `json:"content"`
	Tags        types.FlexList[string] `json:"tags"`
}

// CaseLaw is a landmark case entry. Read-only after seed.
type CaseLaw struct {
	ID        int      `json:"id"`
	CaseTitle string   `json:"caseTitle"`
	Court     string   `json:"court"`
	Year      int      `json:"year"`
	Citation  string   `json:"citation"`
	Summary   string   `json:"summary"`
	Category  string   `json:"category"`
	KeyPoints []string `json:"keyPoints"`
}

// StateLawGuide is a state-specific legal guide. Read-only after seed.
type StateLawGuide struct {
	ID          int    `json:"id"`
	State       string `json:"state"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	LastUpdated string `json:"lastUpdated"`
}
