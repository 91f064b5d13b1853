package shipment

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("shipment not found")
	ErrPartyNotFound   = errors.New("party not found")
	ErrRoleDenied      = errors.New("role denied")
	ErrStateConflict   = errors.New("shipment state conflict")
)
