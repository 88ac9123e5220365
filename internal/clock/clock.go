package clock

import "time"

// NowFunc returns the current time. Override in tests so that archived run
// timestamps stay deterministic.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }
