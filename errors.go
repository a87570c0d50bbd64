package folio

import "errors"

var (
	// ErrInvalidSource is returned when an image path cannot be fetched from.
	ErrInvalidSource = errors.New("folio: invalid source")

	// ErrFetchFailed indicates that fetching image bytes failed.
	ErrFetchFailed = errors.New("folio: fetch failed")
)
