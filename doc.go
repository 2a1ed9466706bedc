/*
Package flash runs a single-turn chat through a tiny message graph.

The graph is START -> chat_bot -> END. The chat_bot node forwards the conversation to a
ports.ChatModel and appends the reply. State is append-only and lives for one invocation only:
nothing is persisted and nothing is shared between calls.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/flash"
		"github.com/aretw0/flash/pkg/adapters/openai"
	)

	func main() {
		model, err := openai.New(openai.Config{APIKey: "sk-...", Model: openai.DefaultModel})
		if err != nil {
			log.Fatal(err)
		}

		g, err := flash.NewChatGraph(model)
		if err != nil {
			log.Fatal(err)
		}

		final, err := flash.Ask(context.Background(), g, "Hello!")
		if err != nil {
			log.Fatal(err)
		}

		last, _ := final.Last()
		fmt.Println(last.Content)
	}

# Observability

Lifecycle hooks (WithLifecycleHooks) fire on entry to and exit from every node, and WithTracer
emits OpenTelemetry spans for the invocation and each node.
*/
package flash
