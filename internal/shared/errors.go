package shared

import "fmt"

var (
	// Domain errors
	ErrValidation = fmt.Errorf("invalid input")
	ErrNotFound   = fmt.Errorf("not found")

	// Command errors
	ErrInvalidArgument = fmt.Errorf("invalid number of arguments")
	ErrUnknownCommand  = fmt.Errorf("unknown command")

	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Persistence errors
	ErrStorage = fmt.Errorf("storage failure")
)
