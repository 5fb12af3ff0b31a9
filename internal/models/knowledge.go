package models

import "github.com/workfree/pocket-lawyer/internal/types"

// KnowledgeArticle is a legal information article in the knowledge base.
type KnowledgeArticle struct {
	ID          int                    `json:"id"`
	Title       string                 `json:"title"`
	Content     string                 `json:"content"`
	Category    string                 `json:"category"`
	Tags        types.FlexList[string] `json:"tags"`
	IsPublished bool                   `json:"isPublished"`
}

// InsertKnowledgeArticle is the accepted payload for creating an article.
// IsPublished defaults to true when omitted.
type InsertKnowledgeArticle struct {
	Title       string                 `json:"title" validate:"required"`
	Content     string                 `json:"content" validate:"required"`
	Category    string                 `json:"category" validate:"required"`
	Tags        types.FlexList[string] `json:"tags"`
	IsPublished *bool                  `json:"isPublished"`
}

// UpdateKnowledgeArticle is the partial payload for PUT. Nil fields are left
// unchanged.
type UpdateKnowledgeArticle struct {
	Title       *string                 `json:"title" validate:"omitempty,min=1"`
	Content     *string                 `json:"content" validate:"omitempty,min=1"`
	Category    *string                 `json:"category" validate:"omitempty,min=1"`
	Tags        *types.FlexList[string] `json:"tags"`
	IsPublished *bool                   `json:"isPublished"`
}
