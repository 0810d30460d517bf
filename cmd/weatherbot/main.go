package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	toolloop "github.com/Protocol-Lattice/go-toolloop"
	"github.com/Protocol-Lattice/go-toolloop/src/chat"
	"github.com/Protocol-Lattice/go-toolloop/src/models"
	"github.com/Protocol-Lattice/go-toolloop/src/toolbox"
)

func main() {
	lang := flag.String("lang", "en", "toolbox locale (en or es)")
	question := flag.String("q", "is it currently raining in Berkeley CA?", "question to ask")
	flag.Parse()

	_ = godotenv.Load()
	ctx := context.Background()

	model, desc, err := models.FromEnvironment()
	if err != nil {
		log.Fatalf("failed to pick a model endpoint: %v", err)
	}
	fmt.Printf("Using %s\n", desc)

	weather, err := toolbox.NewWeatherTool(toolbox.Locale(*lang))
	if err != nil {
		log.Fatalf("failed to build weather tool: %v", err)
	}

	loop, err := toolloop.New(toolloop.Options{
		Model: model,
		Tools: []toolloop.Tool{weather},
		OnToolCall: func(call chat.ToolCall) {
			fmt.Printf("Tool request: %s(%s)\n", call.Name, call.Arguments)
		},
	})
	if err != nil {
		log.Fatalf("failed to build loop: %v", err)
	}

	res, err := loop.RunOnce(ctx, []chat.Message{
		chat.System("You are a weather chatbot. Answer from the tool output only."),
		chat.User(*question),
	})
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}
	fmt.Println(res.Content)
}
