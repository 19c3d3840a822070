package parser

import (
	"time"

	"github.com/tidwall/gjson"
)

// NormalizeTimestamp converts a createdAt value to epoch seconds.
// Numbers are truncated and returned without unit conversion; anything else
// (missing, null, strings, booleans, objects) falls back to now.
func NormalizeTimestamp(v gjson.Result, now func() time.Time) int64 {
	if v.Type == gjson.Number {
		return v.Int()
	}
	return now().Unix()
}
