package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Props is the loosely typed property bag decoded from scene files. YAML
// decodes whole numbers as int, so numeric lookups accept both.
type Props map[string]any

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	}
	return 0, false
}

func (p Props) Float(key string, fallback float32) float32 {
	if v, ok := toFloat(p[key]); ok {
		return v
	}
	return fallback
}

func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

func (p Props) String(key string, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Vector3 reads a three element list such as [1, 2.5, 0].
func (p Props) Vector3(key string, fallback rl.Vector3) rl.Vector3 {
	list, ok := p[key].([]any)
	if !ok || len(list) != 3 {
		return fallback
	}
	var out [3]float32
	for i, item := range list {
		f, ok := toFloat(item)
		if !ok {
			return fallback
		}
		out[i] = f
	}
	return rl.Vector3{X: out[0], Y: out[1], Z: out[2]}
}

func (p Props) Strings(key string) []string {
	list, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
