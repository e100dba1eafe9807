package domain

// EventKind identifies the kind of repository event that may trigger a run.
type EventKind string

// Known event kinds. Trigger rules naming any other kind are rejected as a
// definition error before execution begins.
const (
	// EventPush is a branch push event.
	EventPush EventKind = "push"

	// EventPullRequest is a pull request targeting a branch.
	EventPullRequest EventKind = "pull_request"
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// KnownEventKind reports whether k is an event kind the engine understands.
func KnownEventKind(k EventKind) bool {
	return k == EventPush || k == EventPullRequest
}

// Event is the record the trigger evaluator inspects. For push events Branch
// is the pushed branch; for pull_request events it is the target branch.
type Event struct {
	// Kind is the event kind (push or pull_request).
	Kind EventKind `json:"kind"`

	// Branch is the branch the event targets.
	Branch string `json:"branch"`
}
