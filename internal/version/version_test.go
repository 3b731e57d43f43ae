package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get(12)
	assert.Equal(t, Version, info.BuildTag)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, 12, info.Interactions)

	s := info.String()
	assert.Contains(t, s, "Build Tag:    dev")
	assert.Contains(t, s, "Interactions: 12")
	assert.Equal(t, "dev", Short())
}
