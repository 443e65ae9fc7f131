package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FilterName(t *testing.T) {
	assert.True(t, FilterName("main.go"))
	assert.True(t, FilterName("src"))
	assert.True(t, FilterName("gitignore"))

	assert.False(t, FilterName(".git"))
	assert.False(t, FilterName(".DS_Store"))
	assert.False(t, FilterName("._resource"))
	assert.False(t, FilterName("Thumbs.db"))
}

func Test_Extend(t *testing.T) {
	oldPatterns := append([]string(nil), IgnoredPaths...)
	defer func() { IgnoredPaths = oldPatterns }()

	assert.True(t, FilterName("debug.log"))
	Extend([]string{"*.log"})
	assert.False(t, FilterName("debug.log"))
	assert.True(t, FilterName("main.go"))
}
