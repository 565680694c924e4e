package input

import (
	_ "embed"
	"fmt"
	"os"

	"area51/internal/logging"

	"gopkg.in/yaml.v3"
)

// Action names the player controller listens to.
const (
	ActionMove   = "Move"
	ActionLook   = "Look"
	ActionZoom   = "Zoom"
	ActionJump   = "Jump"
	ActionCrouch = "Crouch"
	ActionRun    = "Run"
	ActionPickUp = "PickUp"
	ActionThrow  = "Throw"
)

//go:embed default_bindings.yaml
var defaultBindings []byte

// BindingsFile is the YAML layout of a bindings file.
type BindingsFile struct {
	Actions []ActionDef `yaml:"actions"`
}

type ActionDef struct {
	Name         string        `yaml:"name"`
	Type         Kind          `yaml:"type"`
	Keys         []string      `yaml:"keys,omitempty"`
	MouseButtons []string      `yaml:"mouseButtons,omitempty"`
	Mouse        string        `yaml:"mouse,omitempty"`
	Composite    *CompositeDef `yaml:"composite,omitempty"`
}

type CompositeDef struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// ActionMap owns a set of actions, polled together once per tick.
type ActionMap struct {
	actions []*Action
	byName  map[string]*Action
}

func NewActionMap() *ActionMap {
	return &ActionMap{byName: make(map[string]*Action)}
}

// DefaultActionMap returns the built-in keyboard and mouse layout.
func DefaultActionMap() (*ActionMap, error) {
	return ParseBindings(defaultBindings)
}

// LoadBindings reads a YAML bindings file from disk.
func LoadBindings(path string) (*ActionMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings: %w", err)
	}
	return ParseBindings(data)
}

// ParseBindings builds an ActionMap from YAML. Unknown key or button names are
// logged and skipped so one typo does not disable the whole layout.
func ParseBindings(data []byte) (*ActionMap, error) {
	var file BindingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse bindings: %w", err)
	}

	m := NewActionMap()
	for _, def := range file.Actions {
		if def.Name == "" {
			return nil, fmt.Errorf("binding without action name")
		}
		kind := def.Type
		switch kind {
		case "":
			kind = KindButton
		case KindButton, KindAxis, KindVector2:
		default:
			return nil, fmt.Errorf("action %q: unknown type %q", def.Name, def.Type)
		}

		a := m.Add(def.Name, kind)
		a.bindings = append(a.bindings, buildBindings(def)...)
		a.perFrame = a.perFrame || def.Mouse == "wheel"
	}
	return m, nil
}

func buildBindings(def ActionDef) []binding {
	var out []binding

	if len(def.Keys) > 0 {
		var kb keyBinding
		for _, name := range def.Keys {
			k, err := KeyCode(name)
			if err != nil {
				logging.Logger.Warn().Err(err).Str("action", def.Name).Msg("skipping key binding")
				continue
			}
			kb.keys = append(kb.keys, k)
		}
		if len(kb.keys) > 0 {
			out = append(out, kb)
		}
	}

	if len(def.MouseButtons) > 0 {
		var mb mouseButtonBinding
		for _, name := range def.MouseButtons {
			b, err := MouseButtonCode(name)
			if err != nil {
				logging.Logger.Warn().Err(err).Str("action", def.Name).Msg("skipping mouse binding")
				continue
			}
			mb.buttons = append(mb.buttons, b)
		}
		if len(mb.buttons) > 0 {
			out = append(out, mb)
		}
	}

	switch def.Mouse {
	case "":
	case "delta":
		out = append(out, mouseDeltaBinding{})
	case "wheel":
		out = append(out, mouseWheelBinding{})
	default:
		logging.Logger.Warn().Str("action", def.Name).Str("mouse", def.Mouse).Msg("unknown mouse source")
	}

	if c := def.Composite; c != nil {
		var cb compositeBinding
		var err error
		for _, part := range []struct {
			dst  *int32
			name string
		}{{&cb.up, c.Up}, {&cb.down, c.Down}, {&cb.left, c.Left}, {&cb.right, c.Right}} {
			if *part.dst, err = KeyCode(part.name); err != nil {
				logging.Logger.Warn().Err(err).Str("action", def.Name).Msg("skipping composite binding")
				break
			}
		}
		if err == nil {
			out = append(out, cb)
		}
	}
	return out
}

// Add returns the named action, creating it if needed.
func (m *ActionMap) Add(name string, kind Kind) *Action {
	if a, ok := m.byName[name]; ok {
		return a
	}
	a := &Action{Name: name, Kind: kind}
	m.actions = append(m.actions, a)
	m.byName[name] = a
	return a
}

// Action returns the named action or nil.
func (m *ActionMap) Action(name string) *Action {
	return m.byName[name]
}

// Bind subscribes h to the named action. Binding to an action the map does
// not define is reported so a stale layout file is noticed.
func (m *ActionMap) Bind(name string, h Handler) error {
	a, ok := m.byName[name]
	if !ok {
		return fmt.Errorf("no action named %q", name)
	}
	a.AddHandler(h)
	return nil
}

// Update polls src and fires callbacks in declaration order.
func (m *ActionMap) Update(src Source) {
	for _, a := range m.actions {
		a.update(src)
	}
}
