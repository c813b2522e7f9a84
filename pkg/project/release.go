package project

var releaseJobs []func()

// RegisterReleaseFunc queues f to run on shutdown.
func RegisterReleaseFunc(f func()) {
	releaseJobs = append(releaseJobs, f)
}

// CallReleaseFunc runs the queued functions in reverse registration
// order.
func CallReleaseFunc() {
	for i := len(releaseJobs) - 1; i >= 0; i-- {
		releaseJobs[i]()
	}
}
