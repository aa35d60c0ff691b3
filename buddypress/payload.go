package buddypress

import "strconv"

// Payload is the loosely typed primary_item/secondary_item object
// attached to an activity. Its shape depends on the activity kind and
// on how much of it the server chose to send; every accessor walks a
// key path and reports whether the value was present and usable, so
// missing nested data is an ordinary condition rather than an error.
type Payload map[string]any

func (p Payload) value(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	cur := p
	for _, key := range path[:len(path)-1] {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	v, ok := cur[path[len(path)-1]]
	return v, ok
}

// Map returns the nested object at the given path.
func (p Payload) Map(path ...string) (Payload, bool) {
	v, ok := p.value(path...)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return Payload(m), ok
}

// Str returns the string at the given path.
func (p Payload) Str(path ...string) (string, bool) {
	v, ok := p.value(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Float returns the number at the given path. WordPress meta values
// frequently arrive as numeric strings; those are accepted too.
func (p Payload) Float(path ...string) (float64, bool) {
	v, ok := p.value(path...)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Int returns the integer at the given path.
func (p Payload) Int(path ...string) (int, bool) {
	f, ok := p.Float(path...)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// Bool returns the boolean at the given path.
func (p Payload) Bool(path ...string) (bool, bool) {
	v, ok := p.value(path...)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Slice returns the array at the given path.
func (p Payload) Slice(path ...string) ([]any, bool) {
	v, ok := p.value(path...)
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}
