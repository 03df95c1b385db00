package clock

// Duration counts ticks.
type Duration int
