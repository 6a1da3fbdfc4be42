package risk

// Rule thresholds. These are contract constants: downstream consumers compare
// stored scores across time, so they must not drift.
const (
	lowBalanceThreshold = 0.1
	lowBalancePoints    = 20

	noActivityPoints = 30

	noHoldingsPoints = 10

	highFrequencySample = 15
	highFrequencyWindow = 3600 // seconds
	highFrequencyPoints = 15

	mediumLevelFloor = 20
	highLevelFloor   = 50
)

// Anomaly rule thresholds.
const (
	failureRateThreshold = 0.3

	burstMinRecords = 20
	burstSample     = 10
	burstWindow     = 600 // seconds

	whaleBalanceThreshold = 10000

	drainedBalanceThreshold = 0.01
	drainedMinActivity      = 10

	circularPrefixLen   = 10
	circularGroupSize   = 3
	circularGroupsFloor = 2

	regularMinRecords  = 10
	regularMinStamped  = 5
	regularCVThreshold = 0.15
)
