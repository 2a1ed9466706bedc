package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/flash/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart for a compiled graph.
// Nodes are expected in execution order. It applies semantic styling:
// - Start/End markers: ((Circle))
// - Default: [Rectangle]
func GenerateMermaid(nodes []string, edges []domain.Edge) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	writeNode(&sb, domain.Start)
	for _, id := range nodes {
		writeNode(&sb, id)
	}
	writeNode(&sb, domain.End)

	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeMermaidID(e.From), sanitizeMermaidID(e.To)))
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, id string) {
	opener, closer := "[", "]"
	label := id

	switch id {
	case domain.Start:
		opener, closer, label = "((", "))", "START"
	case domain.End:
		opener, closer, label = "((", "))", "END"
	}

	// Escape double quotes for the Mermaid label
	label = strings.ReplaceAll(label, "\"", "'")
	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(id), opener, label, closer))
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
