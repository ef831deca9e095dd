package internal

import "time"

func defineGlobals(arena *envArena) {
	defineClock(arena)
}

// clock returns the wall-clock time in seconds
func defineClock(arena *envArena) {
	clock := &nativeFn{
		name:       "clock",
		arityValue: 0,
		callFn: func(arguments []value) (value, error) {
			return loxNumber(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	}
	arena.define(globalEnv, clock.name, clock)
}
