package domain

import "errors"

// Request-level failure kinds. Wrap with fmt.Errorf("%w: ...") to add detail;
// callers classify with errors.Is.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrTranslation   = errors.New("translation failed")
	ErrEmbedding     = errors.New("embedding failed")
	ErrDataIntegrity = errors.New("data integrity")
)
