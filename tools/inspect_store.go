package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/workfree/pocket-lawyer/internal/store"
)

// Prints the seeded store contents so the embedded JSON can be sanity
// checked without starting the server.
func main() {
	s, err := store.New()
	if err != nil {
		log.Fatal(err)
	}

	counts, err := json.MarshalIndent(s.Counts(), "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(counts))

	fmt.Println("\nKnowledge articles:")
	for _, a := range s.GetKnowledgeArticles() {
		fmt.Printf("  %d: %s [%s]\n", a.ID, a.Title, a.Category)
	}

	fmt.Println("\nCase law:")
	for _, c := range s.GetCaseLaw("", "") {
		fmt.Printf("  %d: %s (%d) [%s]\n", c.ID, c.CaseTitle, c.Year, c.Category)
	}

	fmt.Println("\nTemplates:")
	for _, t := range s.GetLegalTemplates("") {
		fmt.Printf("  %d: %s [%s]\n", t.ID, t.Title, t.Category)
	}

	fmt.Println("\nState guides:")
	for _, g := range s.GetStateLawGuides("", "") {
		fmt.Printf("  %d: %s - %s [%s]\n", g.ID, g.State, g.Title, g.Category)
	}
}
