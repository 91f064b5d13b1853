package location

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotAssigned     = errors.New("driver is not assigned to shipment")
	ErrNotInTransit    = errors.New("shipment is not in transit")
)
