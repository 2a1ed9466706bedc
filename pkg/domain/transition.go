package domain

// Edge is an unconditional, directed link from one node to another.
// From may be Start and To may be End.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}
