package pubsub

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Codec matches goka.Codec.
type Codec interface {
	Encode(value any) (data []byte, err error)
	Decode(data []byte) (value any, err error)
}

func newJSONCodec(prototype any) *JSONCodec {
	return &JSONCodec{prototype: prototype}
}

var _ Codec = (*JSONCodec)(nil)

type JSONCodec struct {
	prototype any
}

func (c *JSONCodec) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling data: %w", err)
	}

	return data, nil
}

// Decode returns a pointer to a fresh value of the prototype's type.
func (c *JSONCodec) Decode(data []byte) (any, error) {
	pt := reflect.TypeOf(c.prototype)
	if pt == nil {
		var generic map[string]any
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("unmarshaling data: %w", err)
		}
		return generic, nil
	}
	if pt.Kind() == reflect.Pointer {
		pt = pt.Elem()
	}

	instance := reflect.New(pt).Interface()
	if err := json.Unmarshal(data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling data: %w", err)
	}

	return instance, nil
}
