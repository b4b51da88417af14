package commands

// Wired reports whether the last invocation left its wiring open.
func Wired() bool { return appCtx != nil }
