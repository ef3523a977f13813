package dsl

import (
	"context"
	"time"

	dekoda "github.com/reoring/dekoda"
	"github.com/reoring/dekoda/i18n"
)

// TimeRFC3339 decodes an RFC 3339 timestamp string into time.Time.
// Fractional seconds are accepted. A malformed timestamp fails with
// invalid_format, keeping the parser error in Cause.
func TimeRFC3339() dekoda.Decoder[time.Time] {
	return dekoda.DecoderFunc[time.Time](func(ctx context.Context, v any) (time.Time, error) {
		s, ok := v.(string)
		if !ok {
			return time.Time{}, mismatch("string", v)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, invalidFormat("RFC 3339", err)
		}
		return t, nil
	})
}

// Duration decodes a Go duration string such as "1h30m" into time.Duration.
func Duration() dekoda.Decoder[time.Duration] {
	return dekoda.DecoderFunc[time.Duration](func(ctx context.Context, v any) (time.Duration, error) {
		s, ok := v.(string)
		if !ok {
			return 0, mismatch("string", v)
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, invalidFormat("duration", err)
		}
		return d, nil
	})
}

func invalidFormat(format string, cause error) dekoda.Issues {
	return dekoda.Issues{{
		Code:    dekoda.CodeInvalidFormat,
		Message: i18n.T(dekoda.CodeInvalidFormat, map[string]string{"format": format}),
		Hint:    format,
		Cause:   cause,
		Params:  map[string]any{"format": format},
		Offset:  -1,
	}}
}
