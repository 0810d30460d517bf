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
	maxTurns := flag.Int("max-turns", 10, "round-trip cap before giving up (0 = unbounded)")
	question := flag.String("q", "show me trail running shoes under 50 dollars", "question to ask")
	flag.Parse()

	_ = godotenv.Load()
	ctx := context.Background()

	model, desc, err := models.FromEnvironment()
	if err != nil {
		log.Fatalf("failed to pick a model endpoint: %v", err)
	}
	fmt.Printf("Using %s\n", desc)

	search, err := toolbox.NewSearchTool(toolbox.Locale(*lang))
	if err != nil {
		log.Fatalf("failed to build search tool: %v", err)
	}

	loop, err := toolloop.New(toolloop.Options{
		Model:    model,
		Tools:    []toolloop.Tool{search},
		MaxTurns: *maxTurns,
		OnToolCall: func(call chat.ToolCall) {
			fmt.Printf("Tool request: %s(%s)\n", call.Name, call.Arguments)
		},
	})
	if err != nil {
		log.Fatalf("failed to build loop: %v", err)
	}

	res, err := loop.Run(ctx, append(seedConversation(), chat.User(*question)))
	if err != nil {
		log.Fatalf("run failed after %d turns: %v", res.Turns, err)
	}
	fmt.Println(res.Content)
}

// seedConversation shows the model one worked example of a price-filtered
// search before the real question arrives.
func seedConversation() []chat.Message {
	example := chat.Call("search_database",
		`{"search_query":"running shoes","price_filter":{"comparison_operator":"<","value":80}}`)
	return []chat.Message{
		chat.System("You are a product search assistant. Always search the database before answering."),
		chat.User("do you have running shoes under 80 dollars?"),
		chat.AssistantCalls(example),
		chat.ToolResult(example, `[{"id":"123","name":"Example Product","price":19.99}]`),
		chat.Assistant("Yes, the Example Product is in stock at $19.99."),
	}
}
