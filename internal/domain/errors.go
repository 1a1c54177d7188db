package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFleet is returned when a plan is requested with zero vehicles.
var ErrEmptyFleet = errors.New("vehicle fleet must not be empty")

// InvalidPackageError rejects a package before planning starts.
type InvalidPackageError struct {
	PackageID string
	Field     string
	Reason    string
}

func (e *InvalidPackageError) Error() string {
	return fmt.Sprintf("invalid package %q: %s %s", e.PackageID, e.Field, e.Reason)
}

// UnroutableError identifies packages that planning cannot place: either
// heavier than every vehicle's capacity (detected up front) or left over
// when the selected vehicle can carry none of them. Planning fails rather
// than looping forever or silently dropping them.
type UnroutableError struct {
	PackageIDs []string
}

func (e *UnroutableError) Error() string {
	return fmt.Sprintf("packages could not be scheduled: %s", strings.Join(e.PackageIDs, ", "))
}
