// Command seed fills the job store with demo application records so the API
// has something to show on a fresh install.
package main

import (
	"fmt"
	"log"

	"jobtrack-utils/internal/config"
	"jobtrack-utils/internal/store"
	"jobtrack-utils/pkg/models"
)

func intPtr(v int) *int { return &v }

var sampleJobs = []models.JobCreate{
	{
		Company:   "Stripe",
		Position:  "Backend Engineer",
		Location:  "Remote",
		JobURL:    "https://stripe.com/jobs/backend-engineer",
		SalaryMin: intPtr(150000),
		SalaryMax: intPtr(200000),
		Status:    models.StatusApplied,
		Notes:     "Applied through referral from Sarah",
	},
	{
		Company:   "Vercel",
		Position:  "Senior Go Engineer",
		Location:  "San Francisco, CA",
		JobURL:    "https://vercel.com/careers/senior-go-engineer",
		SalaryMin: intPtr(170000),
		SalaryMax: intPtr(220000),
		Status:    models.StatusInterviewing,
		Notes:     "Second round scheduled",
	},
	{
		Company:  "Datadog",
		Position: "Software Engineer, Observability",
		Location: "New York, NY",
		JobURL:   "https://careers.datadoghq.com/observability",
		Status:   models.StatusWishlist,
	},
	{
		Company:   "Fly.io",
		Position:  "Platform Engineer",
		Location:  "Remote",
		SalaryMin: intPtr(140000),
		SalaryMax: intPtr(180000),
		Status:    models.StatusWishlist,
		Notes:     "Interesting infra work",
	},
	{
		Company:  "HashiCorp",
		Position: "Distributed Systems Engineer",
		Location: "Remote",
		Status:   models.StatusRejected,
		Notes:    "Position filled internally",
	},
}

func main() {
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	jobStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open job store: %v", err)
	}
	defer jobStore.Close()

	for _, job := range sampleJobs {
		created, err := jobStore.Create(job)
		if err != nil {
			log.Fatalf("Failed to insert sample job for %s: %v", job.Company, err)
		}
		fmt.Printf("Created job %d: %s - %s (%s)\n", created.ID, created.Company, created.Position, created.Status)
	}

	fmt.Printf("Seeded %d sample job applications into %s\n", len(sampleJobs), cfg.Database.Path)
}
