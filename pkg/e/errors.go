package e

import "errors"

var (
	ErrMalformedLine = errors.New("malformed JSON line")
	ErrVerifyFailed  = errors.New("verification failed")
)
