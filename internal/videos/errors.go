package videos

import "errors"

var (
	// ErrAlreadyExists is reported by conditional creates when a row for the
	// (book, chapter) key is already generating or completed. Callers fall
	// back to reading the stored row; the racing submit's handle is dropped.
	ErrAlreadyExists = errors.New("chapter video already exists")

	// ErrNotGenerating is reported by MarkCompleted/MarkFailed when the row is
	// no longer in the generating state. Duplicate and late pollers treat it
	// as a no-op.
	ErrNotGenerating = errors.New("chapter video is not generating")

	ErrVideoNotFound   = errors.New("no video found for this chapter")
	ErrBookNotFound    = errors.New("book not found")
	ErrChapterNotFound = errors.New("no verses found for this chapter")

	// ErrProducerNotConfigured means the video provider credential is missing.
	// Jobs failing on it are recorded as failed and are not retried until an
	// operator fixes the configuration and a new request comes in.
	ErrProducerNotConfigured = errors.New("video provider API key not configured")
)
