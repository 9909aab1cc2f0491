package cache

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tags the logical type of a serialized cache value so that a
// text-only backend can reverse its lossy storage.
type Kind string

const (
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindJSON   Kind = "json"
)

// TaggedValue is the serialization contract for text backends:
// a kind plus the textual payload, decoded by a total match over kind.
type TaggedValue struct {
	Kind    Kind   `json:"kind"`
	Payload string `json:"payload"`
}

// EncodeValue classifies a value into its tagged textual form. Numbers
// of any width collapse to their decimal representation, strings pass
// through, everything else is stored as JSON.
func EncodeValue(value any) (TaggedValue, error) {
	switch v := value.(type) {
	case float64:
		return TaggedValue{Kind: KindNumber, Payload: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	case float32:
		return TaggedValue{Kind: KindNumber, Payload: strconv.FormatFloat(float64(v), 'g', -1, 32)}, nil
	case int:
		return TaggedValue{Kind: KindNumber, Payload: strconv.FormatInt(int64(v), 10)}, nil
	case int32:
		return TaggedValue{Kind: KindNumber, Payload: strconv.FormatInt(int64(v), 10)}, nil
	case int64:
		return TaggedValue{Kind: KindNumber, Payload: strconv.FormatInt(v, 10)}, nil
	case string:
		return TaggedValue{Kind: KindString, Payload: v}, nil
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return TaggedValue{}, fmt.Errorf("encode cache value: %w", err)
		}
		return TaggedValue{Kind: KindJSON, Payload: string(raw)}, nil
	}
}

// DecodeValue reverses EncodeValue. Numbers decode to float64, strings
// to string, JSON payloads to generic JSON values.
func DecodeValue(tagged TaggedValue) (any, error) {
	switch tagged.Kind {
	case KindNumber:
		n, err := strconv.ParseFloat(tagged.Payload, 64)
		if err != nil {
			return nil, fmt.Errorf("decode cached number %q: %w", tagged.Payload, err)
		}
		return n, nil
	case KindString:
		return tagged.Payload, nil
	case KindJSON:
		var value any
		if err := json.Unmarshal([]byte(tagged.Payload), &value); err != nil {
			return nil, fmt.Errorf("decode cached json: %w", err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("unknown cache value kind %q", tagged.Kind)
	}
}
