package domain

import "errors"

// ErrSuggestionUnavailable is returned when the external AI collaborator
// fails; callers degrade to an error response instead of crashing the
// pipeline.
var ErrSuggestionUnavailable = errors.New("suggestion unavailable")
