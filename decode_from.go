package dekoda

import (
	"context"
	stdjson "encoding/json"
	"errors"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/dekoda/i18n"
	eng "github.com/reoring/dekoda/internal/engine"
)

// DecodeFrom materializes one value from src and applies d to it. Failures
// during materialization (syntax errors, enforcement violations) come back
// as Issues, the same error shape decoders themselves produce.
func DecodeFrom[T any](ctx context.Context, d Decoder[T], src Source, opts ...ParseOpt) (T, error) {
	if src == nil {
		var zero T
		return zero, Issues{{Code: CodeParseError, Message: i18n.T(CodeParseError, nil) + ": nil source", Offset: -1}}
	}
	opt := firstOpt(opts)
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	v, err := Materialize(src, opt)
	if err != nil {
		var zero T
		return zero, err
	}
	return Apply(ctx, d, v)
}

// DecodeBytes decodes JSON bytes with the current JSON driver.
func DecodeBytes[T any](ctx context.Context, d Decoder[T], data []byte, opts ...ParseOpt) (T, error) {
	opt := firstOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		var zero T
		return zero, Issues{{Code: CodeTruncated, Message: i18n.T(CodeTruncated, nil), Offset: opt.MaxBytes}}
	}
	return DecodeFrom(ctx, d, JSONBytes(data), opts...)
}

// DecodeReader streams JSON from r with the current JSON driver. With
// opt.MaxBytes set the reader is capped one byte past the limit, so
// oversized input surfaces as truncated instead of being read to the end.
func DecodeReader[T any](ctx context.Context, d Decoder[T], r io.Reader, opts ...ParseOpt) (T, error) {
	opt := firstOpt(opts)
	var capped *cappedReader
	if opt.MaxBytes > 0 {
		capped = &cappedReader{r: io.LimitReader(r, opt.MaxBytes+1), cap: opt.MaxBytes}
		r = capped
	}
	out, err := DecodeFrom(ctx, d, JSONReader(r), opts...)
	if err != nil && capped != nil && capped.capped && IsCode(err, CodeParseError) {
		var zero T
		return zero, Issues{{Code: CodeTruncated, Message: i18n.T(CodeTruncated, nil), Offset: opt.MaxBytes}}
	}
	return out, err
}

// Materialize reads one complete value from src as nested map[string]any,
// []any and scalars, honoring opt. Empty arrays come back non-nil.
func Materialize(src Source, opts ...ParseOpt) (any, error) {
	opt := firstOpt(opts)
	toks := engineTokens(src)
	if enforcementNeeded(opt) {
		toks = eng.Enforce(toks, eng.Limits{
			OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
			MaxDepth:    opt.MaxDepth,
			MaxBytes:    opt.MaxBytes,
			WarnSink:    forwardWarns(opt.WarnSink),
			FailFast:    opt.FailFast,
		})
	}
	v, err := eng.BuildTree(toks, numberConv(src.NumberMode()))
	if err != nil {
		return nil, toIssues(err, src)
	}
	return v, nil
}

func firstOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[0]
	}
	return ParseOpt{}
}

func enforcementNeeded(opt ParseOpt) bool {
	return opt.Strictness.OnDuplicateKey != Ignore || opt.MaxDepth > 0 || opt.MaxBytes > 0
}

func toEngineDup(s Severity) eng.DupPolicy {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func numberConv(m NumberMode) eng.NumberConv {
	if m == NumberFloat64 {
		return eng.Float64Conv
	}
	return eng.JSONNumberConv
}

func forwardWarns(sink func(Issue)) func(eng.Issue) {
	if sink == nil {
		return nil
	}
	return func(is eng.Issue) { sink(issueFromEngine(is)) }
}

// toIssues classifies a materialization failure. Engine enforcement issues
// keep their code and path; parser errors become parse_error with the byte
// offset when the parser reports one.
func toIssues(err error, src Source) Issues {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{issueFromEngine(ie.Issue)}
	}
	offset := src.Location()
	var sErr *stdjson.SyntaxError
	if errors.As(err, &sErr) {
		offset = sErr.Offset
	} else {
		var gErr *gojson.SyntaxError
		if errors.As(err, &gErr) {
			offset = gErr.Offset
		}
	}
	msg := i18n.T(CodeParseError, nil)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		msg += ": unexpected end of input"
	} else {
		msg += ": " + err.Error()
	}
	return Issues{{Code: CodeParseError, Message: msg, Cause: err, Offset: offset}}
}

func issueFromEngine(is eng.Issue) Issue {
	p := make(Path, 0, len(is.Path))
	for _, s := range is.Path {
		if s.IsIndex {
			p = append(p, IndexSegment(s.Index))
		} else {
			p = append(p, KeySegment(s.Key))
		}
	}
	var data map[string]string
	if is.Code == eng.CodeDuplicateKey {
		if n := len(is.Path); n > 0 && !is.Path[n-1].IsIndex {
			data = map[string]string{"key": is.Path[n-1].Key}
		}
	}
	return Issue{Path: p, Code: is.Code, Message: i18n.T(is.Code, data), Offset: is.Offset}
}

// cappedReader remembers whether the underlying LimitReader ran dry so a
// mid-value EOF can be reported as truncation rather than a syntax error.
type cappedReader struct {
	r      io.Reader
	cap    int64
	read   int64
	capped bool
}

func (c *cappedReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += int64(n)
	if c.read > c.cap {
		c.capped = true
	}
	return n, err
}
