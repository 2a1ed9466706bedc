/*
Package domain contains the core models of the flash message graph.

It defines the data threaded through one graph invocation and the contracts a graph is made of.
This package is kept pure and free of I/O, following the same hexagonal split as the rest of the
module: adapters live in pkg/adapters and the execution runtime in internal/runtime.

# Key Entities

  - Message: a role-tagged unit of conversational text.
  - State: the record threaded through one invocation (an ordered, append-only message list).
  - Delta: the partial update a node returns, merged into State by a MergeFunc.
  - Edge: a directed, unconditional link between two nodes (or the Start/End markers).
  - LifecycleHooks: observability callbacks fired by the runtime around each node.
*/
package domain
