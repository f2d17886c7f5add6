package component

// SlowMotionSession is the single global slow-motion window. Remaining is
// measured in real (unscaled) seconds.
type SlowMotionSession struct {
	Active       bool
	Remaining    float64
	StartedFrame uint64
}

// TimeScale is the process-wide time dilation. It lives on the entity tagged
// TimeKeeperTag and has a single writer, the time-scale system.
type TimeScale struct {
	Scale      float64
	SlowMotion SlowMotionSession
}

var TimeScaleComponent = NewComponent[TimeScale]()
