package data

import (
	_ "embed"
)

//go:embed seed/knowledge.json
var SeedKnowledgeArticles []byte

//go:embed seed/cases.json
var SeedCaseLaw []byte

//go:embed seed/templates.json
var SeedLegalTemplates []byte

//go:embed seed/state_guides.json
var SeedStateLawGuides []byte
