package dekoda

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch    = "type_mismatch"
	CodeMissingField    = "missing_field"
	CodeIndexOutOfRange = "index_out_of_range"
	CodeNumericRange    = "numeric_range"
	CodeCustom          = "custom"
	// Builder / union codes
	CodeUnknownKey           = "unknown_key"
	CodeInvalidFormat        = "invalid_format"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	// Source-layer codes (materializing input)
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
	CodeTruncated    = "truncated"
)

// Issue represents a single decode failure. The taxonomy is open: any string
// code is permitted and custom decoders are expected to mint their own.
type Issue struct {
	Path    Path   // Root-relative location (zero value = root).
	Code    string // One of the codes listed above, or a user code.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
	// Params carries structured cause data (e.g. {"expected":"string",
	// "actual":"number"} or {"value":"300","target":"uint8"}) for i18n and
	// observability.
	Params map[string]any
	// Rule optionally records the refinement rule that produced this issue.
	Rule string
}

// Issues is the aggregate failure of a decode; it implements error and is
// never empty when returned by the library. Issues values are treated as
// immutable: helpers build new slices and new Issue values instead of
// editing in place.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. type_mismatch at /items/2/price
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Detail renders every issue on its own line with its dotted path, for logs
// and CLI output.
func (iss Issues) Detail() string {
	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "%s: %s (%s)", it.Path.String(), it.Message, it.Code)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// EnsureIssues converts err into Issues, wrapping foreign errors from custom
// decoders as a single custom issue at the root.
func EnsureIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{Issue{Code: CodeCustom, Message: err.Error(), Cause: err, Offset: -1}}
}

// IsCode reports whether err carries at least one issue with the given code.
func IsCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// PrefixKey returns a copy of iss with the key segment prepended to every
// issue path. Container combinators use it to locate child failures.
func PrefixKey(iss Issues, name string) Issues { return prefixIssues(iss, KeySegment(name)) }

// PrefixIndex returns a copy of iss with the index segment prepended to every
// issue path.
func PrefixIndex(iss Issues, i int) Issues { return prefixIssues(iss, IndexSegment(i)) }

func prefixIssues(iss Issues, seg Segment) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		np := make(Path, len(it.Path)+1)
		np[0] = seg
		copy(np[1:], it.Path)
		it.Path = np
		out[i] = it
	}
	return out
}
