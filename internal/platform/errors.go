package platform

import (
	"errors"
)

var (
	// ErrNotFound is returned by storage lookups when no matching row exists.
	ErrNotFound = errors.New("not found")
	// ErrFetchFailed is returned when a page can't be fetched (network failure or timeout).
	ErrFetchFailed = errors.New("page fetch failed")
	// ErrPageNotFound is returned when a product page responds with 404.
	ErrPageNotFound = errors.New("page not found")
	// ErrPageStructure is returned when a fetched page misses expected markup.
	ErrPageStructure = errors.New("page structure not recognized")
	// ErrDuplicateArticle is returned when a scraped product's article code is already stored.
	ErrDuplicateArticle = errors.New("article code already stored")
	// ErrConstraintRace is returned when the store rejects an insert the precheck approved.
	ErrConstraintRace = errors.New("insert rejected by uniqueness constraint")
	// ErrMalformedRecord is returned when a source record misses a required or numeric field.
	ErrMalformedRecord = errors.New("malformed source record")
)

// Error kinds used in batch summaries.
const (
	KindFetch      = "fetch"
	KindNotFound   = "not_found"
	KindParse      = "parse"
	KindDuplicate  = "duplicate"
	KindConstraint = "constraint_race"
	KindMalformed  = "malformed"
	KindStorage    = "storage"
)

// ErrorKind maps an error to its summary kind.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrPageNotFound):
		return KindNotFound
	case errors.Is(err, ErrFetchFailed):
		return KindFetch
	case errors.Is(err, ErrPageStructure):
		return KindParse
	case errors.Is(err, ErrDuplicateArticle):
		return KindDuplicate
	case errors.Is(err, ErrConstraintRace):
		return KindConstraint
	case errors.Is(err, ErrMalformedRecord):
		return KindMalformed
	default:
		return KindStorage
	}
}
