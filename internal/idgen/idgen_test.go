package idgen

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	fixed := time.UnixMilli(1704877200000)
	g := &timestampGenerator{now: func() time.Time { return fixed }}

	id := g.NewID()
	assert.Regexp(t, regexp.MustCompile(`^1704877200000-[0-9a-f]{9}$`), id)
}

func TestNewIDUnique(t *testing.T) {
	g := New()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGeneratorFunc(t *testing.T) {
	var g Generator = GeneratorFunc(func() string { return "fixed" })
	assert.Equal(t, "fixed", g.NewID())
}
