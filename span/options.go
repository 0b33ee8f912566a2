package span

import "log/slog"

// Options controls the optional post-passes and diagnostic logging of
// AnalyzeSpans / CreateConcatFromSpans. The zero value runs both
// post-passes and logs nothing.
type Options struct {
	// Logger receives diagnostic events bracketing each call, mirroring
	// the source's initializeLogHeader/restoreLogHeader pair. A nil
	// Logger disables tracing entirely; the core never requires one to
	// function.
	Logger *slog.Logger

	// DisablePrefixCollapse skips C6's prefix-collapse post-pass,
	// leaving Member/Slice accesses on width-matching prefixes
	// uncollapsed. Useful for a diagnostic "raw partition" view.
	DisablePrefixCollapse bool

	// DisableAllOthers skips C6's all-others detection post-pass.
	DisableAllOthers bool
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
