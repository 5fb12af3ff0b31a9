package store

import (
	"encoding/json"
	"fmt"

	"github.com/workfree/pocket-lawyer/data"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/types"
)

type seedArticle struct {
	Title       string                 `json:"title"`
	Content     string                 `json:"content"`
	Category    string                 `json:"category"`
	Tags        types.FlexList[string] `json:"tags"`
	IsPublished bool                   `json:"isPublished"`
}

type seedCase struct {
	CaseTitle string   `json:"caseTitle"`
	Court     string   `json:"court"`
	Year      int      `json:"year"`
	Citation  string   `json:"citation"`
	Summary   string   `json:"summary"`
	Category  string   `json:"category"`
	KeyPoints []string `json:"keyPoints"`
}

type seedTemplate struct {
	Title       string                 `json:"title"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Content     string                 `json:"content"`
	Tags        types.FlexList[string] `json:"tags"`
}

type seedGuide struct {
	State       string `json:"state"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	LastUpdated string `json:"lastUpdated"`
}

// seed loads the embedded content into the read-mostly collections. Ids are
// assigned by the collections like any other insert, so client-created
// articles continue the same sequence.
func (s *Store) seed() error {
	var articles []seedArticle
	if err := json.Unmarshal(data.SeedKnowledgeArticles, &articles); err != nil {
		return fmt.Errorf("seed knowledge articles: %w", err)
	}
	for _, a := range articles {
		s.articles.Insert(func(id int) models.KnowledgeArticle {
			return models.KnowledgeArticle{
				ID:          id,
				Title:       a.Title,
				Content:     a.Content,
				Category:    a.Category,
				Tags:        a.Tags,
				IsPublished: a.IsPublished,
			}
		})
	}

	var cases []seedCase
	if err := json.Unmarshal(data.SeedCaseLaw, &cases); err != nil {
		return fmt.Errorf("seed case law: %w", err)
	}
	for _, c := range cases {
		s.cases.Insert(func(id int) models.CaseLaw {
			return models.CaseLaw{
				ID:        id,
				CaseTitle: c.CaseTitle,
				Court:     c.Court,
				Year:      c.Year,
				Citation:  c.Citation,
				Summary:   c.Summary,
				Category:  c.Category,
				KeyPoints: c.KeyPoints,
			}
		})
	}

	var templates []seedTemplate
	if err := json.Unmarshal(data.SeedLegalTemplates, &templates); err != nil {
		return fmt.Errorf("seed legal templates: %w", err)
	}
	for _, t := range templates {
		s.templates.Insert(func(id int) models.LegalTemplate {
			return models.LegalTemplate{
				ID:          id,
				Title:       t.Title,
				Category:    t.Category,
				Description: t.Description,
				Content:     t.Content,
				Tags:        t.Tags,
			}
		})
	}

	var guides []seedGuide
	if err := json.Unmarshal(data.SeedStateLawGuides, &guides); err != nil {
		return fmt.Errorf("seed state law guides: %w", err)
	}
	for _, g := range guides {
		s.stateGuides.Insert(func(id int) models.StateLawGuide {
			return models.StateLawGuide{
				ID:          id,
				State:       g.State,
				Title:       g.Title,
				Category:    g.Category,
				Content:     g.Content,
				LastUpdated: g.LastUpdated,
			}
		})
	}

	return nil
}
