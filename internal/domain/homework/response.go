// internal/domain/homework/response.go
package homework

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	fieldHomeworks   = "homeworks"
	fieldCurrentDate = "current_date"
	fieldName        = "homework_name"
	fieldStatus      = "status"
)

// ParseResponse validates a decoded API answer and extracts its homework records.
// Key membership is checked before the value type.
func ParseResponse(raw any) (*Response, error) {
	body, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %T", ErrShape, raw)
	}

	rawHomeworks, ok := body[fieldHomeworks]
	if !ok {
		return nil, fmt.Errorf("%w: key %q is missing", ErrShape, fieldHomeworks)
	}
	items, ok := rawHomeworks.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, expected an array", ErrShape, fieldHomeworks, rawHomeworks)
	}

	homeworks := make([]Homework, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: homeworks[%d] is %T, expected an object", ErrShape, i, item)
		}
		homeworks = append(homeworks, Homework{
			Name:   stringField(record, fieldName),
			Status: Status(stringField(record, fieldStatus)),
		})
	}

	resp := &Response{Homeworks: homeworks}
	if rawDate, ok := body[fieldCurrentDate]; ok && rawDate != nil {
		unix, err := unixSeconds(rawDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrShape, fieldCurrentDate, err)
		}
		resp.CurrentDate = time.Unix(unix, 0)
	}
	return resp, nil
}

func stringField(record map[string]any, key string) string {
	s, _ := record[key].(string)
	return s
}

func unixSeconds(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Int64()
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
