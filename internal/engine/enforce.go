package engine

// Streaming enforcement: duplicate key policy, maximum nesting depth, and
// maximum consumed bytes, applied while tokens flow through, before any tree
// is materialized.

// Issue codes reported by the enforcement layer.
const (
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
	CodeTruncated    = "truncated"
)

// DupPolicy controls duplicate key handling while streaming.
type DupPolicy int

const (
	DupIgnore DupPolicy = iota // Last key wins, nothing reported.
	DupWarn                    // Report to WarnSink, keep going.
	DupError                   // Stop with an IssueError.
)

// Seg is one typed path step tracked by the enforcer.
type Seg struct {
	Key     string
	Index   int
	IsIndex bool
}

// Issue is the lightweight failure report of the enforcement layer.
type Issue struct {
	Code    string
	Path    []Seg
	Message string
	Offset  int64
}

// IssueError carries an Issue across the TokenSource error channel.
type IssueError struct{ Issue }

func (e IssueError) Error() string { return e.Message }

// Limits bundles the enforcement options.
type Limits struct {
	OnDuplicate DupPolicy
	MaxDepth    int   // 0 disables the depth check.
	MaxBytes    int64 // 0 disables the size check.
	// WarnSink receives duplicate-key issues under DupWarn. Optional.
	WarnSink func(Issue)
	// FailFast escalates DupWarn to a fatal stop.
	FailFast bool
}

// Enforce wraps src so that every token is checked against lim.
func Enforce(src TokenSource, lim Limits) TokenSource {
	return &enforcer{inner: src, lim: lim}
}

type enforcer struct {
	inner TokenSource
	lim   Limits
	stack []frame
	depth int
}

// frame tracks one open container. For objects, keys is only allocated when
// the duplicate policy needs it.
type frame struct {
	object    bool
	keys      map[string]struct{}
	awaitKey  bool
	key       string // pending key for the next object value
	nextIndex int
	path      []Seg // path of the container itself
}

func (e *enforcer) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	at := e.tokenPath(tok)

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		f := frame{object: tok.Kind == KindBeginObject, path: at}
		if f.object {
			f.awaitKey = true
			if e.lim.OnDuplicate != DupIgnore {
				f.keys = make(map[string]struct{})
			}
		}
		e.stack = append(e.stack, f)
		e.depth++
		if e.lim.MaxDepth > 0 && e.depth > e.lim.MaxDepth {
			return Token{}, IssueError{Issue{Code: CodeMaxDepth, Path: at, Message: "max depth exceeded", Offset: tok.Offset}}
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
		if e.depth > 0 {
			e.depth--
		}
		e.valueDone()
	case KindKey:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if top.object && top.awaitKey {
				if top.keys != nil {
					if _, seen := top.keys[tok.String]; seen {
						is := Issue{Code: CodeDuplicateKey, Path: at, Message: "key '" + tok.String + "' duplicated", Offset: tok.Offset}
						if e.lim.OnDuplicate == DupError || e.lim.FailFast {
							return Token{}, IssueError{is}
						}
						if e.lim.WarnSink != nil {
							e.lim.WarnSink(is)
						}
					}
					top.keys[tok.String] = struct{}{}
				}
				top.awaitKey = false
				top.key = tok.String
			}
		}
	case KindString, KindNumber, KindBool, KindNull:
		e.valueDone()
	}

	if e.lim.MaxBytes > 0 {
		if off := e.Location(); off >= 0 && off > e.lim.MaxBytes {
			return Token{}, IssueError{Issue{Code: CodeTruncated, Path: at, Message: "max bytes exceeded", Offset: off}}
		}
	}

	return tok, nil
}

// valueDone marks the enclosing object as expecting a key again after a
// value (scalar or closed container) completes.
func (e *enforcer) valueDone() {
	if n := len(e.stack); n > 0 {
		top := &e.stack[n-1]
		if top.object && !top.awaitKey {
			top.awaitKey = true
			top.key = ""
		}
	}
}

// tokenPath computes the typed path the given token refers to.
func (e *enforcer) tokenPath(tok Token) []Seg {
	if len(e.stack) == 0 {
		if tok.Kind == KindKey {
			return []Seg{{Key: tok.String}}
		}
		return nil
	}
	top := &e.stack[len(e.stack)-1]
	switch tok.Kind {
	case KindKey:
		return appendSeg(top.path, Seg{Key: tok.String})
	case KindBeginObject, KindBeginArray, KindString, KindNumber, KindBool, KindNull:
		if !top.object {
			s := appendSeg(top.path, Seg{Index: top.nextIndex, IsIndex: true})
			top.nextIndex++
			return s
		}
		if !top.awaitKey {
			return appendSeg(top.path, Seg{Key: top.key})
		}
		return top.path
	default:
		return top.path
	}
}

// appendSeg copy-appends so container frames never share backing arrays.
func appendSeg(p []Seg, s Seg) []Seg {
	np := make([]Seg, len(p)+1)
	copy(np, p)
	np[len(p)] = s
	return np
}

func (e *enforcer) Location() int64 { return e.inner.Location() }
