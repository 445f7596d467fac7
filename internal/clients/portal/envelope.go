package portal

import (
	"encoding/json"
	"fmt"
)

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// decode unwraps the portal's response envelope in exactly one place: list
// and detail payloads arrive nested at data.data, single-call helpers at
// data. A change to the envelope shape is an edit here, not in every caller.
func decode[T any](body []byte) (T, error) {
	var result T

	payload := body
	var outer envelope
	if err := json.Unmarshal(body, &outer); err == nil && outer.Data != nil {
		payload = outer.Data

		var inner envelope
		if err := json.Unmarshal(payload, &inner); err == nil && inner.Data != nil {
			payload = inner.Data
		}
	}

	if err := json.Unmarshal(payload, &result); err != nil {
		return result, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return result, nil
}
