package simulator

// Options represents configuration options for the Simulator.
type Options struct {
	// SnapshotInterval is the logical-time distance between snapshot
	// events scheduled by ScheduleSnapshots.
	SnapshotInterval int64

	// DepthLevels is how many levels per side go into recorded snapshots
	// and the imbalance indicator.
	DepthLevels int
}

// DefaultOptions returns the default simulator options.
func DefaultOptions() *Options {
	return &Options{
		SnapshotInterval: 10,
		DepthLevels:      5,
	}
}
