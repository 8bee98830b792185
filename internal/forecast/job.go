package forecast

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a trend forecast job submitted to River.
// The struct is used as the unique key for jobs to prevent duplicate work per signal.
type JobArgs struct {
	// Signal is the signal name to forecast. It is marked as unique so River
	// can enforce one job per signal according to InsertOpts.UniqueOpts.
	Signal string `json:"signal" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniquePeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniquePeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the forecast worker.
func (args JobArgs) Kind() string { return "TrendForecastJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate jobs for the same signal across multiple job states.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per signal in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
