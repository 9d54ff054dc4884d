package orchestration

import (
	"context"

	"github.com/agbru/primecount/internal/partition"
)

// Session groups the runs of one invocation: a single run, the same
// configuration repeated, or one run per policy.
type Session struct {
	Options Options
	// Policies lists the policies to run. More than one selects a comparison;
	// when empty, Options.Policy is used.
	Policies []partition.Policy
	// Repeat is the number of runs of a single policy. Values below 2 mean
	// one run.
	Repeat int
}

// NewSession builds the session for a policy name ("block", "interleaved"
// or "compare") and a repeat count.
func NewSession(opts Options, policyName string, repeat int) (Session, error) {
	policies, err := PoliciesToRun(policyName)
	if err != nil {
		return Session{}, err
	}
	return Session{Options: opts, Policies: policies, Repeat: repeat}, nil
}

// Runs returns how many orchestrator runs the session performs.
func (s Session) Runs() int {
	if len(s.Policies) > 1 {
		return len(s.Policies)
	}
	return max(s.Repeat, 1)
}

// Execute performs the runs in sequence. It returns every result gathered,
// including failed ones; the error is the one that ended a single or
// repeated run early.
func (s Session) Execute(ctx context.Context) ([]Result, error) {
	opts := s.Options
	if len(s.Policies) > 1 {
		return Compare(ctx, opts, s.Policies...)
	}
	if len(s.Policies) == 1 {
		opts.Policy = s.Policies[0]
	}
	if s.Repeat > 1 {
		return Repeat(ctx, opts, s.Repeat)
	}
	res, err := Run(ctx, opts)
	return []Result{res}, err
}
