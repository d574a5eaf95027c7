package videos

import "context"

// Synthesizer turns a chapter's text into a bounded cinematic prompt.
type Synthesizer interface {
	Synthesize(ctx context.Context, bookName string, chapter int, chapterText string) (string, error)
}
