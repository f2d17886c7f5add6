package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// TimeKeeperTag marks the single entity that owns the global TimeScale.
type TimeKeeperTag struct{}

var TimeKeeperTagComponent = NewComponent[TimeKeeperTag]()
