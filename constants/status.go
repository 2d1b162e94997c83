package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued   JobStatus = "QUEUED"   // waiting for a worker
	JobStatusRunning  JobStatus = "RUNNING"  // in progress
	JobStatusTextOK   JobStatus = "TEXT_OK"  // stage 1 completed (text + sections)
	JobStatusLLMOK    JobStatus = "LLM_OK"   // stage 3 completed (fields extracted)
	JobStatusRejected JobStatus = "REJECTED" // candidate failed validation
	JobStatusFailed   JobStatus = "FAILED"   // terminal failure
)

// Strategy is the processing route chosen by the viability classifier.
type Strategy string

const (
	StrategyDirect     Strategy = "direct"
	StrategyMultiStage Strategy = "multi_stage"
)

// PlanStrategy is how chunk extraction calls are scheduled.
type PlanStrategy string

const (
	PlanSequential PlanStrategy = "sequential"
	PlanParallel   PlanStrategy = "parallel"
	PlanHybrid     PlanStrategy = "hybrid"
)

// Complexity buckets derived from document metadata.
type Complexity string

const (
	ComplexityLow     Complexity = "low"
	ComplexityMedium  Complexity = "medium"
	ComplexityHigh    Complexity = "high"
	ComplexityExtreme Complexity = "extreme"
)
