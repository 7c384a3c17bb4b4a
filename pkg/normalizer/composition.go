package normalizer

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p CompositionPolicy) String() string {
	switch p {
	case CompositionMerge:
		return "merge"
	case CompositionLastWins:
		return "last-wins"
	case CompositionReject:
		return "reject"
	}
	return fmt.Sprintf("composition policy %d", int(p))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParseComposition returns the composition policy for a name, as used
// on the command line.
func ParseComposition(name string) (CompositionPolicy, error) {
	switch name {
	case "merge":
		return CompositionMerge, nil
	case "last-wins":
		return CompositionLastWins, nil
	case "reject":
		return CompositionReject, nil
	}
	return 0, fmt.Errorf("invalid composition policy: %q", name)
}
