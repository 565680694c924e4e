package engine

import (
	"fmt"
	"slices"
)

// ComponentFactory creates a Component from declarative props (scene files).
type ComponentFactory func(props Props) Component

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component type. Registering the same
// name twice panics.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent looks up a registered component by name and creates it with the given props.
func CreateComponent(name string, props Props) (Component, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown component type %q", name)
	}
	if props == nil {
		props = Props{}
	}
	return factory(props), nil
}

// RegisteredComponents returns a sorted list of all registered component names.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
