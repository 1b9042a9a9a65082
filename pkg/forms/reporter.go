package forms

import "log/slog"

// Reporter is the error-log side channel for recoverable conditions: a choice
// list that could not be extracted, a jump directive pointing at an unknown
// item. Reported conditions degrade the output (empty list, missing
// annotation) but never abort an export, so they surface here instead of in
// return values.
type Reporter interface {
	Report(msg string, args ...any)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(msg string, args ...any)

// Report implements Reporter.
func (f ReporterFunc) Report(msg string, args ...any) {
	f(msg, args...)
}

// NewLogReporter returns a Reporter that logs conditions as warnings. A nil
// logger falls back to slog.Default.
func NewLogReporter(logger *slog.Logger) Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return ReporterFunc(func(msg string, args ...any) {
		logger.Warn(msg, args...)
	})
}

// DiscardReporter drops every reported condition. Useful in tests that pin
// output without caring about the side channel.
var DiscardReporter Reporter = ReporterFunc(func(string, ...any) {})
