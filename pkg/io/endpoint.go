package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidEndpoint is returned when a link endpoint or set member is
// neither a string ID nor an object with a string "id" field.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// endpoint is a node reference that decodes from either a bare ID ("p5") or
// an id-bearing object ({"id": "p5", ...}). Any other object fields are
// ignored. It always encodes as a bare ID.
type endpoint string

type idObject struct {
	ID *string `json:"id"`
}

func (e *endpoint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidEndpoint
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = endpoint(s)
		return nil
	case '{':
		var obj idObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.ID == nil {
			return fmt.Errorf("%w: object without id", ErrInvalidEndpoint)
		}
		*e = endpoint(*obj.ID)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidEndpoint, data)
}

// UnmarshalTOML accepts a string or an inline table with an "id" key.
func (e *endpoint) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case string:
		*e = endpoint(t)
		return nil
	case map[string]any:
		if id, ok := t["id"].(string); ok {
			*e = endpoint(id)
			return nil
		}
		return fmt.Errorf("%w: table without string id", ErrInvalidEndpoint)
	}
	return fmt.Errorf("%w: %v", ErrInvalidEndpoint, v)
}

func ids(eps []endpoint) []string {
	out := make([]string, len(eps))
	for i, e := range eps {
		out[i] = string(e)
	}
	return out
}
