package version

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	_, err := semver.NewVersion(GetVersion())
	require.NoError(t, err)
	assert.NotEmpty(t, GetGitCommit())
	assert.NotEmpty(t, GetBuildDate())
}

func TestIsRelease(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })

	version = "1.2.3"
	assert.True(t, IsRelease())

	version = "1.2.3-rc.1"
	assert.False(t, IsRelease())

	version = "dev"
	assert.False(t, IsRelease())
}
