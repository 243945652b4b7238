package beamcore

import "fmt"

// invariantPanic carries the diagnostic for a fatal internal invariant
// violation through a panic/recover pair local to one Search call. It
// is never allowed to escape the engine package: RecoverInvariant turns
// it into a returned error.
type invariantPanic struct {
	err error
}

// RaiseInvariant panics with a diagnostic wrapping ErrInvariantViolation.
// Engines call this from the few places spec.md §4.E names as fatal:
// root pruned, a non-leaf freed, or dedup map overflow.
func RaiseInvariant(format string, args ...any) {
	panic(invariantPanic{err: fmt.Errorf("beamcore: %s: %w", fmt.Sprintf(format, args...), ErrInvariantViolation)})
}

// RecoverInvariant recovers an invariantPanic raised by RaiseInvariant,
// logs it once via logger, and stores it into *errOut. Any other panic
// value is re-panicked unchanged — only the engine's own fatal
// diagnostics are converted into a returned error; a programmer bug
// elsewhere must still crash loudly.
//
// Call via: defer beamcore.RecoverInvariant(cfg.EffectiveLogger(), &err)
func RecoverInvariant(logger Logger, errOut *error) {
	r := recover()
	if r == nil {
		return
	}

	ip, ok := r.(invariantPanic)
	if !ok {
		panic(r)
	}

	logger.Printf("%s", ip.err.Error())
	*errOut = ip.err
}
