/*
Package ports defines the driven ports (interfaces) of the flash message graph.

These interfaces decouple the graph nodes from external implementations, allowing the chat
graph to run against a hosted model, an in-process stub or anything else that honours the
contract.

# Key Interfaces

  - ChatModel: the single request/response call to a language model.
*/
package ports
