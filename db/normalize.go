package db

import (
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Normalize converts decoded bson values (bson.D, bson.M, bson.A, Decimal128)
// into plain maps, slices and numbers so they encode as ordinary JSON.
func Normalize(v any) any {
	switch val := v.(type) {
	case bson.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = Normalize(e.Value)
		}
		return out
	case bson.M:
		return normalizeMap(val)
	case map[string]any:
		return normalizeMap(val)
	case bson.A:
		return normalizeSlice(val)
	case []any:
		return normalizeSlice(val)
	case bson.Decimal128:
		f, err := strconv.ParseFloat(val.String(), 64)
		if err != nil {
			return val.String()
		}
		return f
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Normalize(v)
	}
	return out
}

func normalizeSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = Normalize(v)
	}
	return out
}
