package dekoda

import "encoding/json"

// Kind classifies the shape of a decoded tree value. Kind names form the
// vocabulary of type_mismatch reporting.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMap
)

var kindNames = [...]string{"invalid", "null", "bool", "number", "string", "sequence", "map"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// KindOf reports the shape of v. Trees materialized from a Source contain
// only nil, bool, string, json.Number or float64, []any and map[string]any;
// caller-built trees may additionally carry native Go numerics, which
// classify as numbers.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case json.Number, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case []any:
		return KindSequence
	case map[string]any:
		return KindMap
	default:
		return KindInvalid
	}
}
