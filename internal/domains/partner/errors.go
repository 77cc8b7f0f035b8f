package partner

import "errors"

var (
	ErrPartnerNotFound = errors.New("partner inquiry not found")
	ErrInvalidStatus   = errors.New("invalid partner status")
)
