package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestPropsLookups(t *testing.T) {
	p := Props{
		"int":    3,
		"float":  2.5,
		"flag":   true,
		"name":   "crate",
		"vec":    []any{1, 2.5, -3},
		"badVec": []any{1, "x", 3},
		"tags":   []any{"holdable", 7, "wood"},
	}

	assert.Equal(t, float32(3), p.Float("int", 0))
	assert.Equal(t, float32(2.5), p.Float("float", 0))
	assert.Equal(t, float32(9), p.Float("missing", 9))
	assert.True(t, p.Bool("flag", false))
	assert.True(t, p.Bool("missing", true))
	assert.Equal(t, "crate", p.String("name", ""))
	assert.Equal(t, "x", p.String("int", "x"))
	assert.Equal(t, rl.Vector3{X: 1, Y: 2.5, Z: -3}, p.Vector3("vec", rl.Vector3{}))
	assert.Equal(t, rl.Vector3{X: 9}, p.Vector3("badVec", rl.Vector3{X: 9}))
	assert.Equal(t, []string{"holdable", "wood"}, p.Strings("tags"))
	assert.Nil(t, p.Strings("missing"))
}
