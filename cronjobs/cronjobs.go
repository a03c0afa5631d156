package cronjobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"go-lifeline/rooms"
)

// InitCronJobs starts the periodic maintenance jobs. Currently a single
// occupancy report; delivery counters live in /metrics.
func InitCronJobs(registry *rooms.Registry) {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Registry occupancy report: every 5 minutes
	_, err := c.AddFunc("*/5 * * * *", func() {
		stats := registry.Stats()
		log.Printf("CronJob: realtime occupancy sessions=%d rooms=%d", stats.Sessions, stats.Rooms)
	})
	if err != nil {
		log.Println("Error scheduling occupancy report", err)
	}

	c.Start()
}
