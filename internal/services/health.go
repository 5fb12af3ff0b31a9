package services

import (
	"fmt"

	"github.com/workfree/pocket-lawyer/internal/store"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string         `json:"status"`
	Store        string         `json:"store"`
	Details      map[string]int `json:"details,omitempty"`
	ErrorMessage string         `json:"error,omitempty"`
}

// HealthCheck reports service health. The store is in-process, so the check
// verifies the seeded collections are populated.
func HealthCheck(s *store.Store) HealthCheckResult {
	result := HealthCheckResult{
		Status: "healthy",
		Store:  "ok",
	}

	counts := s.Counts()
	result.Details = counts

	for _, seeded := range []string{"knowledgeArticles", "caseLaw", "legalTemplates", "stateLawGuides"} {
		if counts[seeded] == 0 {
			result.Status = "unhealthy"
			result.Store = "unseeded"
			result.ErrorMessage = fmt.Sprintf("collection %q has no seed content", seeded)
			break
		}
	}

	return result
}
