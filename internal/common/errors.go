package common

import "errors"

var (
	// Returned by the session store after Close.
	ErrStoreClosed = errors.New("session store closed")

	// Backend payload did not match the expected schema.
	ErrMalformedResponse = errors.New("malformed response")
)
