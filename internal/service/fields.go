package service

import "fmt"

// Partial updates arrive as JSON field maps. Values are checked against the
// column's type before anything is written: a key that is present with a
// wrong-typed value rejects the whole update with 40001, it never reaches
// the datastore.

func requireStrings(fields map[string]interface{}, keys ...string) error {
	for _, key := range keys {
		if v, ok := fields[key]; ok {
			if _, isString := v.(string); !isString {
				return fmt.Errorf("40001:%s must be a string", key)
			}
		}
	}
	return nil
}

// intField returns fields[key] as an int, the fallback when the key is
// absent, or 40001 when the value is not numeric. JSON numbers decode as
// float64, so that is the common case.
func intField(fields map[string]interface{}, key string, fallback int) (int, error) {
	v, ok := fields[key]
	if !ok {
		return fallback, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("40001:%s must be a number", key)
}

func floatField(fields map[string]interface{}, key string, fallback float64) (float64, error) {
	v, ok := fields[key]
	if !ok {
		return fallback, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("40001:%s must be a number", key)
}
