package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tgraph/cmd/tgraph/commands"
	"go.trai.ch/tgraph/internal/app"
	"go.trai.ch/tgraph/internal/build"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, targetNames []string, opts app.ResolveOptions) error
	platforms   []string
	shown       []string
	cleaned     bool
	verbose     bool
}

func (m *mockApp) Resolve(ctx context.Context, targetNames []string, opts app.ResolveOptions) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, targetNames, opts)
	}
	return nil
}

func (m *mockApp) Platforms(_ context.Context, format string) error {
	m.platforms = append(m.platforms, format)
	return nil
}

func (m *mockApp) Show(_ context.Context, digest, format string) error {
	m.shown = append(m.shown, digest, format)
	return nil
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleaned = true
	return nil
}

func (m *mockApp) SetVerbose(enable bool) {
	m.verbose = enable
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ResolveOptions
		var capturedTargets []string
		called := false

		mock := &mockApp{
			resolveFunc: func(_ context.Context, targetNames []string, opts app.ResolveOptions) error {
				capturedOpts = opts
				capturedTargets = targetNames
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"resolve", "App", "kit:Kit",
			"--platform", "iphonesimulator",
			"--sdk-variant", "ios",
			"--arch", "arm64",
			"-c", "Release",
			"--index",
			"--toolchain", "swift",
			"--set", "A=1", "--set", "B=2",
			"--env-set", "C=3",
			"-j", "4",
			"--sequential",
			"--strict-platform-fallback",
			"--opaque-aggregates",
			"-o", "json",
			"--save",
			"--verbose",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, mock.verbose)
		assert.Equal(t, []string{"App", "kit:Kit"}, capturedTargets)
		assert.Equal(t, app.ResolveOptions{
			Platform:               "iphonesimulator",
			SDKVariant:             "ios",
			Arch:                   "arm64",
			Configuration:          "Release",
			Index:                  true,
			Toolchain:              "swift",
			Overrides:              []string{"A=1", "B=2"},
			EnvOverrides:           []string{"C=3"},
			Jobs:                   4,
			Sequential:             true,
			StrictPlatformFallback: true,
			OpaqueAggregates:       true,
			Format:                 "json",
			Save:                   true,
		}, capturedOpts)
	})

	t.Run("uses defaults", func(t *testing.T) {
		var capturedOpts app.ResolveOptions
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ []string, opts app.ResolveOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "App"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, mock.verbose)
		assert.Equal(t, app.DefaultConfiguration, capturedOpts.Configuration)
		assert.Equal(t, "text", capturedOpts.Format)
		assert.Empty(t, capturedOpts.Overrides)
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ []string, _ app.ResolveOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "target"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no targets provided", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ []string, _ app.ResolveOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"resolve"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Platforms(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"platforms", "--format", "json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"json"}, mock.platforms)
}

func TestCommands_Show(t *testing.T) {
	t.Run("passes digest and format", func(t *testing.T) {
		mock := &mockApp{}
		cli := commands.New(mock)
		cli.SetArgs([]string{"show", "0123456789abcdef"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"0123456789abcdef", "text"}, mock.shown)
	})

	t.Run("requires a digest", func(t *testing.T) {
		mock := &mockApp{}
		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"show"})

		require.Error(t, cli.Execute(context.Background()))
		assert.Empty(t, mock.shown)
	})
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.cleaned)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), build.Commit)
}
