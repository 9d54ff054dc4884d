package partition

import (
	"fmt"
	"strings"
)

// Policy selects how the domain is sliced into chunks.
type Policy int

const (
	// Block assigns contiguous ranges of the unshuffled domain.
	Block Policy = iota
	// Interleaved shuffles the domain and deals it out in rows of W.
	Interleaved
)

// Policies lists every policy in a stable order.
var Policies = []Policy{Block, Interleaved}

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case Block:
		return "block"
	case Interleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Shuffles reports whether the policy permutes the domain before slicing.
func (p Policy) Shuffles() bool {
	return p == Interleaved
}

// ParsePolicy maps a configuration name to a Policy. Matching ignores case
// and surrounding whitespace.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "block":
		return Block, nil
	case "interleaved":
		return Interleaved, nil
	default:
		return 0, fmt.Errorf("unknown partition policy %q (want block or interleaved)", name)
	}
}
