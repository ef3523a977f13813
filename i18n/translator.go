package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected"/"actual" for type mismatches or "key" for missing fields).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type_mismatch":
			return "型が不正です"
		case "missing_field":
			return "必須フィールドが不足しています"
		case "index_out_of_range":
			return "インデックスが範囲外です"
		case "numeric_range":
			return "数値が範囲外です"
		case "custom":
			return "検証エラー"
		case "unknown_key":
			return "未知のキーです"
		case "invalid_format":
			return "書式が不正です"
		case "discriminator_missing":
			return "判別キーが不足しています"
		case "discriminator_unknown":
			return "未知のバリアントです"
		case "duplicate_key":
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		case "max_depth":
			return "ネストが深すぎます"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "type_mismatch":
			if data["expected"] != "" && data["actual"] != "" {
				return "expected " + data["expected"] + ", got " + data["actual"]
			}
			return "type mismatch"
		case "missing_field":
			if k := data["key"]; k != "" {
				return "missing field " + quote(k)
			}
			return "missing field"
		case "index_out_of_range":
			if i := data["index"]; i != "" {
				return "index " + i + " out of range for length " + data["length"]
			}
			return "index out of range"
		case "numeric_range":
			if v := data["value"]; v != "" {
				return "value " + v + " out of range for " + data["target"]
			}
			return "value out of range"
		case "custom":
			return "validation failed"
		case "unknown_key":
			if k := data["key"]; k != "" {
				return "unknown key " + quote(k)
			}
			return "unknown key"
		case "invalid_format":
			if f := data["format"]; f != "" {
				return "invalid " + f + " value"
			}
			return "invalid format"
		case "discriminator_missing":
			if k := data["key"]; k != "" {
				return "discriminator " + quote(k) + " missing"
			}
			return "discriminator missing"
		case "discriminator_unknown":
			if v := data["value"]; v != "" {
				return "unknown variant " + quote(v)
			}
			return "unknown variant"
		case "duplicate_key":
			if k := data["key"]; k != "" {
				return "duplicate key " + quote(k)
			}
			return "duplicate key"
		case "parse_error":
			return "parse error"
		case "max_depth":
			return "max depth exceeded"
		case "truncated":
			return "max bytes exceeded"
		}
	}
	return code
}

func quote(s string) string { return "'" + s + "'" }

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
