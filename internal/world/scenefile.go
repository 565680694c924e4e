package world

import (
	"fmt"
	"os"

	"area51/internal/engine"
	"area51/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// SceneFile is the YAML layout of a level.
type SceneFile struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

type ObjectDef struct {
	Name       string         `yaml:"name"`
	Tags       []string       `yaml:"tags,omitempty"`
	Active     *bool          `yaml:"active,omitempty"`
	Position   [3]float32     `yaml:"position"`
	Rotation   [3]float32     `yaml:"rotation"`
	Scale      *[3]float32    `yaml:"scale,omitempty"`
	Components []ComponentDef `yaml:"components"`
	Children   []ObjectDef    `yaml:"children,omitempty"`
}

// ComponentDef names a registered component type; every other key is passed
// to its factory as props.
type ComponentDef struct {
	Type  string         `yaml:"type"`
	Props map[string]any `yaml:",inline"`
}

// ParseScene decodes a scene file without instantiating it.
func ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

// LoadScene reads path and adds its objects to the world.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	sf, err := ParseScene(data)
	if err != nil {
		return err
	}
	if err := w.Instantiate(sf); err != nil {
		return fmt.Errorf("scene %s: %w", path, err)
	}
	logging.Logger.Info().Str("path", path).Int("objects", len(w.Scene.GameObjects)).Msg("scene loaded")
	return nil
}

// Instantiate builds every object in sf. Nothing is added to the world if any
// object fails to build.
func (w *World) Instantiate(sf *SceneFile) error {
	roots := make([]*engine.GameObject, 0, len(sf.Objects))
	for i := range sf.Objects {
		g, err := buildObject(&sf.Objects[i])
		if err != nil {
			return err
		}
		roots = append(roots, g)
	}
	if sf.Name != "" {
		w.Scene.Name = sf.Name
	}
	for _, g := range roots {
		w.Add(g)
	}
	return nil
}

func buildObject(def *ObjectDef) (*engine.GameObject, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("object without a name")
	}
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = vec3(def.Rotation)
	if def.Scale != nil {
		g.Transform.Scale = vec3(*def.Scale)
	}

	for _, cd := range def.Components {
		c, err := engine.CreateComponent(cd.Type, engine.Props(cd.Props))
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}
		g.AddComponent(c)
	}

	for i := range def.Children {
		child, err := buildObject(&def.Children[i])
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
