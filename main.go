package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"go-lifeline/classifier"
	"go-lifeline/config"
	"go-lifeline/cronjobs"
	"go-lifeline/fanout"
	"go-lifeline/rooms"
	"go-lifeline/routes"
)

func main() {
	// Load .env file, optional outside local dev
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	fmt.Println("CLASSIFIER_URL: ", cfg.ClassifierURL)
	if cfg.OpenAIKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}

	opts := []classifier.Option{}
	if cfg.OpenAIKey != "" {
		opts = append(opts, classifier.WithChatProvider(classifier.NewOpenAIProvider(cfg.OpenAIKey)))
	}
	gateway := classifier.New(cfg.ClassifierURL, cfg.ClassifierTimeout, opts...)

	registry := rooms.New()
	dispatcher := fanout.New(registry)

	// Initialize cron jobs
	cronjobs.InitCronJobs(registry)

	r := routes.SetupRouter(gateway, registry, dispatcher)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
