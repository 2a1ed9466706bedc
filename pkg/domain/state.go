package domain

// State is the snapshot threaded through one graph invocation.
// Messages is append-only: nodes never edit it directly, they return a Delta.
type State struct {
	Messages []Message `json:"messages"`
}

// NewState creates the initial state for a run from the given messages.
func NewState(messages ...Message) State {
	s := State{Messages: make([]Message, 0, len(messages)+1)}
	s.Messages = append(s.Messages, messages...)
	return s
}

// Clone returns a copy that shares no backing array with s.
func (s State) Clone() State {
	if s.Messages == nil {
		return State{}
	}
	out := make([]Message, len(s.Messages))
	copy(out, s.Messages)
	return State{Messages: out}
}

// Last returns the final message, if any.
func (s State) Last() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// Delta is the partial update returned by a node.
type Delta struct {
	Messages []Message `json:"messages,omitempty"`
}

// MergeFunc folds a node's Delta into the current State.
type MergeFunc func(State, Delta) State

// AppendMessages is the default merge rule: the delta's messages are concatenated
// after the existing ones. The result never aliases the input's backing array.
func AppendMessages(s State, d Delta) State {
	out := make([]Message, 0, len(s.Messages)+len(d.Messages))
	out = append(out, s.Messages...)
	out = append(out, d.Messages...)
	return State{Messages: out}
}
