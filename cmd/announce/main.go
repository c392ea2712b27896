package main

import (
	"bus-schedule-skill/internal/app"
	"bus-schedule-skill/internal/config"
	"bus-schedule-skill/internal/platform/obs"
	"bus-schedule-skill/internal/skill"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// announce runs a single invocation locally and prints the utterance.
func main() {
	reqType := flag.String("type", skill.LaunchRequest, "request type: LaunchRequest|IntentRequest|SessionEndedRequest")
	intent := flag.String("intent", "", "intent name for IntentRequest (defaults to the configured intent)")
	configPath := flag.String("config", config.Get("CONFIG_PATH", "config.yml"), "path to the YAML config file")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	s, err := app.NewSkill(cfg)
	if err != nil {
		log.Fatal(err)
	}

	req := skill.Request{Type: *reqType, RequestID: obs.NewRequestID()}
	if req.Type == skill.IntentRequest {
		req.IntentName = *intent
		if req.IntentName == "" {
			req.IntentName = cfg.Announcement.IntentName
		}
	}

	ctx := obs.WithRequestID(context.Background(), req.RequestID)
	resp := s.Dispatch(ctx, req)
	fmt.Println(resp.Speech)
}
