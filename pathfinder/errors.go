package pathfinder

import (
	"errors"
	"fmt"
)

// ErrPathNotFound is matched by every error FindPath returns.
var ErrPathNotFound = errors.New("path not found")

// Reason tells why no path was produced
type Reason int

const (
	// ReasonSourceOutside means no cell contains the source point.
	ReasonSourceOutside Reason = iota + 1
	// ReasonDestinationOutside means no cell contains the destination point.
	ReasonDestinationOutside
	// ReasonDisconnected means both frontiers were exhausted without meeting.
	ReasonDisconnected
	// ReasonSearchLimit means the expansion cap set with WithMaxExpansions
	// was reached first.
	ReasonSearchLimit
)

func (r Reason) String() string {
	switch r {
	case ReasonSourceOutside:
		return "source_outside_mesh"
	case ReasonDestinationOutside:
		return "destination_outside_mesh"
	case ReasonDisconnected:
		return "disconnected"
	case ReasonSearchLimit:
		return "search_limit"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// PathNotFoundError carries the reason a search failed
type PathNotFoundError struct {
	Reason Reason
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPathNotFound, e.Reason)
}

// Is lets errors.Is match ErrPathNotFound
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// ReasonOf extracts the failure reason from err, or 0 if err is not a
// PathNotFoundError.
func ReasonOf(err error) Reason {
	var notFound *PathNotFoundError
	if errors.As(err, &notFound) {
		return notFound.Reason
	}
	return 0
}
