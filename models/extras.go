package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// marshalWithExtras encodes known and overlays its keys onto the stored
// document fields in extra. Known fields win on collision.
func marshalWithExtras(known any, extra bson.M) ([]byte, error) {
	b, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return b, err
	}

	var own map[string]json.RawMessage
	if err := json.Unmarshal(b, &own); err != nil {
		return nil, err
	}

	fields := make(map[string]any, len(extra)+len(own))
	for k, v := range extra {
		fields[k] = plainValue(v)
	}
	for k, v := range own {
		fields[k] = v
	}
	return json.Marshal(fields)
}

// plainValue turns ordered documents and arrays decoded from the store into
// maps and slices so they encode as JSON objects and arrays.
func plainValue(v any) any {
	switch t := v.(type) {
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = plainValue(e)
		}
		return m
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

func idPtr(id primitive.ObjectID) *primitive.ObjectID {
	if id.IsZero() {
		return nil
	}
	return &id
}
