package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonsense/internal/cli"
	"github.com/rshade/carbonsense/pkg/version"
)

func TestRun(t *testing.T) {
	t.Run("run function exists", func(_ *testing.T) {
		_ = run
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "carbonsense", root.Use)
		assert.Equal(t, version.GetVersion(), root.Version)
	})
}
