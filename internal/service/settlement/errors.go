package settlement

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidPeriod   = errors.New("invalid settlement period")
	ErrRoleDenied      = errors.New("role denied")
	ErrNotCompleted    = errors.New("shipment is not completed")
)
