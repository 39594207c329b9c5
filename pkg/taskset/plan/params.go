package plan

import (
	"fmt"
	"time"
)

// Params holds the free-form settings of a leaf task
type Params map[string]any

func (p Params) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

func (p Params) Bool(key string) bool {
	v, _ := p[key].(bool)
	return v
}

// Duration accepts Go duration strings or numbers of milliseconds.
func (p Params) Duration(key string) (time.Duration, error) {
	switch v := p[key].(type) {
	case nil:
		return 0, nil
	case string:
		return time.ParseDuration(v)
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	case float64:
		return time.Duration(v * float64(time.Millisecond)), nil
	default:
		return 0, fmt.Errorf("%s: unsupported duration %T", key, v)
	}
}
