package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	toolloop "github.com/Protocol-Lattice/go-toolloop"
	"github.com/Protocol-Lattice/go-toolloop/src/chat"
	"github.com/Protocol-Lattice/go-toolloop/src/models"
	"github.com/Protocol-Lattice/go-toolloop/src/toolbox"
)

func main() {
	lang := flag.String("lang", "en", "toolbox locale (en or es)")
	parallel := flag.Bool("parallel", true, "execute tool calls from one turn concurrently")
	maxTurns := flag.Int("max-turns", 10, "round-trip cap before giving up (0 = unbounded)")
	question := flag.String("q", "Is it a good day for the beach in Sydney, and if not, what movies are showing?", "question to ask")
	flag.Parse()

	_ = godotenv.Load()
	ctx := context.Background()

	model, desc, err := models.FromEnvironment()
	if err != nil {
		log.Fatalf("failed to pick a model endpoint: %v", err)
	}
	fmt.Printf("Using %s\n", desc)

	locale := toolbox.Locale(*lang)
	weather, err := toolbox.NewWeatherTool(locale)
	if err != nil {
		log.Fatalf("failed to build weather tool: %v", err)
	}
	movies, err := toolbox.NewMoviesTool(locale)
	if err != nil {
		log.Fatalf("failed to build movies tool: %v", err)
	}

	loop, err := toolloop.New(toolloop.Options{
		Model:    model,
		Tools:    []toolloop.Tool{weather, movies},
		Parallel: *parallel,
		MaxTurns: *maxTurns,
		OnToolCall: func(call chat.ToolCall) {
			fmt.Printf("Tool request: %s(%s)\n", call.Name, call.Arguments)
		},
		OnToolResult: func(o toolloop.Outcome, took time.Duration) {
			fmt.Printf("Tool answered: %s in %s\n", o.Call.Name, took.Round(time.Millisecond))
		},
	})
	if err != nil {
		log.Fatalf("failed to build loop: %v", err)
	}

	res, err := loop.Run(ctx, []chat.Message{
		chat.System("You are a tourism chatbot. Use the tools for weather and movie listings."),
		chat.User(*question),
	})
	if err != nil {
		log.Fatalf("run failed after %d turns: %v", res.Turns, err)
	}
	fmt.Println(res.Content)
}
