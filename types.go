package dekoda

// NumberMode dictates how numeric tokens materialize in the decoded tree.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Fast mode (with potential precision loss).
)

// Severity expresses the handling level for recoverable input conditions.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore (last key wins), Warn or Error.
}

// ParseOpt bundles source-level decoding options consumed by DecodeFrom.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	FailFast   bool
	// WarnSink receives non-fatal issues (duplicate keys under Warn) observed
	// while materializing the input. Optional.
	WarnSink func(Issue)
}
