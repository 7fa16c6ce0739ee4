package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlate      = errors.New("invalid plate")
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrDataAccess        = errors.New("data access error")
)

const (
	reasonVehicleNotFound = "vehicle not found"
	reasonNoMaintenance   = "no maintenance records"
)

// NotFoundError reports a plate that does not resolve to a maintenance record.
// It matches ErrWorkOrderNotFound.
type NotFoundError struct {
	Plate  string
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("work order not found for plate %q: %s", e.Plate, e.Reason)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrWorkOrderNotFound
}

// DataAccessError wraps a store failure. It matches ErrDataAccess and unwraps
// to the driver error, so context.Canceled and friends stay detectable.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func (e *DataAccessError) Is(target error) bool {
	return target == ErrDataAccess
}
