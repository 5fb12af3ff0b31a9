package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/workfree/pocket-lawyer/internal/config"
	"github.com/workfree/pocket-lawyer/internal/services"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

// Container health probe: hits the running server's health endpoint and
// exits 0/1.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	base := fmt.Sprintf("http://localhost:%s", cfg.Port)

	// Fast TCP check before the full request
	if err := utils.PingService(base, 1500*time.Millisecond); err != nil {
		log.Fatalf("Server unreachable: %v", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(base + "/api/health")
	if err != nil {
		log.Fatalf("Health request failed: %v", err)
	}
	defer resp.Body.Close()

	var result services.HealthCheckResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("Failed to decode health check result: %v", err)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	if resp.StatusCode != http.StatusOK || result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
