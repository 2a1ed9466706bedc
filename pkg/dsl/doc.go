/*
Package dsl provides a fluent builder for flash message graphs.

Nodes are declared with Add, wired with Go, and the whole graph is compiled (validated and
turned into a transition table) with Compile. The reserved Start and End markers anchor the
entry and exit edges.

Example usage:

	package main

	import (
		"github.com/aretw0/flash/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Start().Go("chat_bot")

		b.Add("chat_bot").
			Do(chatBot).
			Go(dsl.End)

		graph, err := b.Compile()
		// ... graph.Invoke(ctx, domain.NewState(domain.UserMessage("hello")))
	}
*/
package dsl
