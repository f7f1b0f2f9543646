package salesjob

import "time"

// Stage is the step of a collection pass.
type Stage string

const (
	StageTracking    Stage = "tracking"
	StageExtracting  Stage = "extracting"
	StageEnriching   Stage = "enriching"
	StageDispatching Stage = "dispatching"
	StagePersisting  Stage = "persisting"
	StageDone        Stage = "done"
)

// Status is the outcome of a collection pass.
type Status string

const (
	// StatusSucceeded means every sale was handed to the dispatcher and the
	// watermark was committed. Individual deliveries may still have failed.
	StatusSucceeded Status = "succeeded"

	// StatusFailed means the pass was aborted and the watermark kept.
	StatusFailed Status = "failed"
)

// CollectionResult describes what a run did for one collection.
type CollectionResult struct {
	Collection        string
	Status            Status
	Stage             Stage // last stage reached
	Err               error
	PreviousWatermark string
	Watermark         string
	Transactions      int
	Sales             int
	SkippedSales      int
	Deliveries        int
	DeliveryFailures  int
}

// RunReport describes a whole run.
type RunReport struct {
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	Collections []CollectionResult
}

// Failed returns the collections whose pass was aborted.
func (r RunReport) Failed() []CollectionResult {
	var failed []CollectionResult
	for _, c := range r.Collections {
		if c.Status == StatusFailed {
			failed = append(failed, c)
		}
	}
	return failed
}
