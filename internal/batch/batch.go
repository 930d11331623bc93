// Where: internal/batch/batch.go
// What: Sequential batch-create orchestration with per-item failure handling.
// Why: Aggregate independent invocations into one ordered outcome report.
package batch

// DerivePath builds the per-item manifest path from the item name and the
// shared environment string.
func DerivePath(name, environment string) string {
	return name + "/overlay/" + environment
}

// Failure pairs an item name with the diagnostic text of its failed attempt.
type Failure struct {
	Name   string
	Reason string
}

// Outcome is the aggregated result of one batch run. Succeeded and Failed
// each preserve input order; items never attempted appear in neither.
type Outcome struct {
	Succeeded []string
	Failed    []Failure
	Aborted   bool
}

// Orchestrator runs one creation per item, strictly in input order with no
// concurrency. Idempotence is the wrapped tool's concern: already-created
// items fail at its discretion and are recorded like any other failure.
type Orchestrator struct {
	// Create performs the single-item creation for a name and derived path.
	Create func(name, path string) error
	// OnError reports a failure to the user immediately, before the
	// continue decision.
	OnError func(name string, err error)
	// Continue asks whether to keep going after a failure. A decline or a
	// prompt error terminates the run early.
	Continue func() (bool, error)
}

// Run executes the batch for the given distinct, ordered names.
func (o *Orchestrator) Run(names []string, environment string) Outcome {
	var outcome Outcome
	for _, name := range names {
		path := DerivePath(name, environment)
		err := o.Create(name, path)
		if err == nil {
			outcome.Succeeded = append(outcome.Succeeded, name)
			continue
		}

		outcome.Failed = append(outcome.Failed, Failure{Name: name, Reason: err.Error()})
		if o.OnError != nil {
			o.OnError(name, err)
		}

		keepGoing, promptErr := o.Continue()
		if promptErr != nil || !keepGoing {
			outcome.Aborted = true
			break
		}
	}
	return outcome
}
