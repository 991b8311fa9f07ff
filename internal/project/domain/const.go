package domain

import "fmt"

// AutoClosePolicy decides whether a donation may close a project on its own.
type AutoClosePolicy string

const (
	// AutoCloseNever leaves closing to an explicit owner action.
	AutoCloseNever AutoClosePolicy = "never"
	// AutoCloseTargetReached closes a project once a donation meets its target.
	AutoCloseTargetReached AutoClosePolicy = "target_reached"
)

// ParseAutoClosePolicy converts a configuration value into an AutoClosePolicy.
// An empty value selects AutoCloseNever.
func ParseAutoClosePolicy(value string) (AutoClosePolicy, error) {
	switch AutoClosePolicy(value) {
	case "", AutoCloseNever:
		return AutoCloseNever, nil
	case AutoCloseTargetReached:
		return AutoCloseTargetReached, nil
	default:
		return "", fmt.Errorf(
			"invalid auto close policy: %s (valid options: never, target_reached)",
			value,
		)
	}
}
