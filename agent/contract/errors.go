package contract

import "errors"

var (
	ErrUnknownTool = errors.New("unknown tool")
	ErrValidation  = errors.New("validation failed")
)
