package domain

import "errors"

var (
	ErrPointNotFound           = errors.New("supply point not found")
	ErrNoAvailableVehicles     = errors.New("no available vehicles")
	ErrNoReachableDestinations = errors.New("no destinations within range")
)
