package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-drift/strata/pkg/graphics"
)

// toFloat64 converts the numeric types produced by the JSON, YAML and CBOR
// decoders to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toBool accepts booleans and the strings "true" and "false".
func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(b) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// toColor accepts hex strings and packed ARGB numbers.
func toColor(v any) (graphics.Color, error) {
	if s, ok := v.(string); ok {
		return graphics.ParseHex(s)
	}
	if f, ok := toFloat64(v); ok && f >= 0 && f <= 0xFFFFFFFF {
		return graphics.Color(uint32(f)), nil
	}
	return 0, fmt.Errorf("expected a hex color string, got %T", v)
}

// lookup returns the first present key among keys.
func lookup(props map[string]any, keys []string) (string, any, bool) {
	for _, k := range keys {
		if v, ok := props[k]; ok && v != nil {
			return k, v, true
		}
	}
	return "", nil, false
}
