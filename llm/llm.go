// Package llm picks the captured request that best matches a natural
// language description, by asking an external language model to return
// an index into the candidate list.
package llm

import (
	"context"

	"github.com/harx-dev/harx/har"
	"github.com/pkg/errors"
)

var (
	// ErrNoCandidates means the filtered entry list was empty.
	ErrNoCandidates = errors.New("no API requests found in HAR file")

	// ErrOutOfRange means the model returned an index outside the
	// candidate list.
	ErrOutOfRange = errors.New("selected index is out of range")
)

// Selector chooses the best matching request from a list of summaries.
type Selector interface {
	SelectBestIndex(ctx context.Context, summaries []har.Summary, intent string) (int, error)
}

// ValidateIndex checks a selector result against the candidate list.
func ValidateIndex(index, total int) error {
	if index < 0 || index >= total {
		return errors.Wrapf(ErrOutOfRange, "index=%d, candidates=%d", index, total)
	}
	return nil
}
