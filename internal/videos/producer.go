package videos

import "context"

// OperationStatus is one status snapshot of a remote production task.
// Done with a VideoURL means success; Done with an ErrMessage means the
// provider gave up. Neither set while Done means the operation finished
// without producing output, which is treated as a failure by callers.
type OperationStatus struct {
	Done       bool
	VideoURL   string
	ErrMessage string
}

// Producer wraps the external video-generation service. Submit is
// fire-and-forget kickoff; FetchStatus is a single check with no loop inside,
// so the component stays a stateless, testable wrapper.
type Producer interface {
	Submit(ctx context.Context, prompt string) (string, error)
	FetchStatus(ctx context.Context, taskID string) (*OperationStatus, error)
}
