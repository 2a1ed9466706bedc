package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/flash/pkg/domain"
)

// Validate checks a graph declared by its node IDs (in declaration order) and edges.
// It reports broken links, reserved or duplicate IDs, unreachable nodes and cycles,
// collecting every problem instead of stopping at the first one. Each problem wraps
// domain.ErrInvalidGraph and a specific sentinel.
//
// On success it returns the execution order: every node, topologically sorted,
// ties broken by declaration order.
func Validate(nodes []string, edges []domain.Edge) ([]string, error) {
	var errs []error
	report := func(kind error, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %w: %s", domain.ErrInvalidGraph, kind, fmt.Sprintf(format, args...)))
	}

	// 1. Declared nodes
	rank := make(map[string]int, len(nodes))
	for i, id := range nodes {
		switch {
		case id == "":
			report(domain.ErrUnknownNode, "node #%d has an empty id", i)
			continue
		case domain.IsMarker(id):
			report(domain.ErrReservedNode, "%q", id)
			continue
		}
		if _, dup := rank[id]; dup {
			report(domain.ErrDuplicateNode, "%q", id)
			continue
		}
		rank[id] = i
	}

	// 2. Edges -> transition table
	next := make(map[string][]string)
	seen := make(map[domain.Edge]bool)
	for _, e := range edges {
		switch {
		case e.To == domain.Start:
			report(domain.ErrReservedNode, "edge %s -> %s enters the start marker", e.From, e.To)
			continue
		case e.From == domain.End:
			report(domain.ErrReservedNode, "edge %s -> %s leaves the end marker", e.From, e.To)
			continue
		}
		if _, ok := rank[e.From]; !ok && e.From != domain.Start {
			report(domain.ErrUnknownNode, "edge %s -> %s: missing source %q", e.From, e.To, e.From)
			continue
		}
		if _, ok := rank[e.To]; !ok && e.To != domain.End {
			report(domain.ErrUnknownNode, "edge %s -> %s: missing target %q", e.From, e.To, e.To)
			continue
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		next[e.From] = append(next[e.From], e.To)
	}

	if len(next[domain.Start]) == 0 {
		report(domain.ErrNoEntry, "declare an edge from the start marker")
		return nil, errors.Join(errs...)
	}

	// 3. Reachability crawl from Start
	visited := map[string]bool{domain.Start: true}
	queue := []string{domain.Start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, target := range next[current] {
			if !visited[target] {
				visited[target] = true
				queue = append(queue, target)
			}
		}
	}
	for _, id := range nodes {
		if _, ok := rank[id]; ok && !visited[id] {
			report(domain.ErrUnreachable, "%q cannot be reached from start", id)
		}
	}
	if !visited[domain.End] {
		report(domain.ErrUnreachable, "end marker cannot be reached from start")
	}

	// 4. Topological order (Kahn), cycles leave nodes behind
	indegree := make(map[string]int, len(rank))
	for from, targets := range next {
		if from == domain.Start || !visited[from] {
			continue
		}
		for _, to := range targets {
			if to != domain.End {
				indegree[to]++
			}
		}
	}

	var ready []string
	for _, to := range next[domain.Start] {
		if to != domain.End && indegree[to] == 0 {
			ready = append(ready, to)
		}
	}

	order := make([]string, 0, len(rank))
	done := make(map[string]bool, len(rank))
	for len(ready) > 0 {
		// Pick the earliest declared ready node
		best := 0
		for i := range ready {
			if rank[ready[i]] < rank[ready[best]] {
				best = i
			}
		}
		current := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		if done[current] {
			continue
		}
		done[current] = true
		order = append(order, current)

		for _, to := range next[current] {
			if to == domain.End {
				continue
			}
			indegree[to]--
			if indegree[to] == 0 {
				ready = append(ready, to)
			}
		}
	}

	var stuck []string
	for _, id := range nodes {
		if _, ok := rank[id]; ok && visited[id] && !done[id] {
			stuck = append(stuck, id)
		}
	}
	if len(stuck) > 0 {
		report(domain.ErrCycle, "through %s", strings.Join(stuck, ", "))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return order, nil
}
