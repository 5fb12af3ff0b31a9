package services

import (
	"math/rand"
	"strings"
)

// Advisor produces a reply for a free-text legal question. The keyword
// implementation below is a stand-in; a real model call can replace it
// without touching the HTTP layer.
type Advisor interface {
	Respond(message string) string
}

// Canned replies, one per practice area. Index order matters: the trigger
// table below refers to entries by position.
var advisorResponses = []string{
	"Based on your question about contract law, here's what you need to know: Contracts require offer, acceptance, and consideration to be legally binding. Would you like me to explain any of these elements in detail?",
	"For employment law matters, it's important to understand your rights. Most employment relationships are 'at-will' unless specified otherwise. I recommend documenting any workplace issues. Would you like specific guidance on your situation?",
	"Regarding property law, tenant rights vary by state but generally include the right to habitable conditions and privacy. Landlords must provide proper notice before entry. What specific property issue are you facing?",
	"For business formation, LLCs offer liability protection and tax flexibility. Consider factors like ownership structure, state of incorporation, and operating agreements. Would you like me to explain the different business entity types?",
	"Family law matters can be complex and emotionally challenging. Each state has different requirements for divorce, custody, and support. I recommend consulting with a local family law attorney for your specific situation.",
}

// Trigger substrings checked in priority order against the lowercased
// message. First match wins.
var advisorTriggers = []struct {
	keywords []string
	response int
}{
	{[]string{"contract"}, 0},
	{[]string{"employment", "work", "job"}, 1},
	{[]string{"tenant", "rent", "property"}, 2},
	{[]string{"business", "llc", "company"}, 3},
	{[]string{"family", "divorce", "custody"}, 4},
}

// KeywordAdvisor selects a canned reply by substring matching, falling back
// to a uniformly random reply when no keyword matches.
type KeywordAdvisor struct {
	pick func(n int) int
}

// NewKeywordAdvisor returns an advisor using math/rand for the fallback.
func NewKeywordAdvisor() *KeywordAdvisor {
	return &KeywordAdvisor{pick: rand.Intn}
}

// Respond implements Advisor. Replies are deterministic whenever a trigger
// keyword is present in the message.
func (a *KeywordAdvisor) Respond(message string) string {
	lower := strings.ToLower(message)

	for _, t := range advisorTriggers {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return advisorResponses[t.response]
			}
		}
	}

	return advisorResponses[a.pick(len(advisorResponses))]
}
