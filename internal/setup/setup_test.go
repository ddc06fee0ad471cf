package setup

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/Utility-Gods/bmichart/internal/app"
	"github.com/Utility-Gods/bmichart/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	cfg := &app.Config{DBPath: filepath.Join(t.TempDir(), "bmichart.db"), LogLevel: "warn"}
	a := app.NewApp(cfg, &bytes.Buffer{}, io.Discard)
	require.NotNil(t, a.Store)
	t.Cleanup(a.Close)
	return a
}

func TestApply_TogglesAndPersists(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer

	done, err := apply(a, actionStrict, &out)
	require.NoError(t, err)
	assert.False(t, done)
	assert.False(t, a.Settings.StrictNumbers)
	assert.Contains(t, out.String(), "Stop on invalid numbers: off")

	_, err = apply(a, actionColor, &out)
	require.NoError(t, err)

	stored, err := a.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, db.Settings{Color: false, StrictNumbers: false}, stored)

	_, err = apply(a, actionReset, &out)
	require.NoError(t, err)
	assert.Equal(t, db.DefaultSettings(), a.Settings)

	stored, err = a.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, db.DefaultSettings(), stored)
}

func TestApply_ToggleKeepsNoColorOverrideOutOfStore(t *testing.T) {
	cfg := &app.Config{DBPath: filepath.Join(t.TempDir(), "bmichart.db"), LogLevel: "warn", NoColor: true}
	a := app.NewApp(cfg, &bytes.Buffer{}, io.Discard)
	require.NotNil(t, a.Store)
	t.Cleanup(a.Close)
	require.False(t, a.Settings.Color)

	var out bytes.Buffer
	_, err := apply(a, actionStrict, &out)
	require.NoError(t, err)

	stored, err := a.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, db.Settings{Color: true, StrictNumbers: false}, stored)
	assert.Contains(t, out.String(), "Coloured chart output: on")

	_, err = apply(a, actionColor, &out)
	require.NoError(t, err)
	stored, err = a.Store.Load()
	require.NoError(t, err)
	assert.False(t, stored.Color, "toggles flip the stored value")
}

func TestApply_ShowAndExit(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer

	done, err := apply(a, actionShow, &out)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, "Coloured chart output: on\nStop on invalid numbers: on\nSettings schema version: 1\n", out.String())

	done, err = apply(a, actionExit, &out)
	require.NoError(t, err)
	assert.True(t, done)

	_, err = apply(a, "Dance", &out)
	assert.Error(t, err)
}

func TestRunSetup_NoStore(t *testing.T) {
	a := app.NewApp(&app.Config{LogLevel: "warn"}, &bytes.Buffer{}, io.Discard)
	assert.ErrorIs(t, RunSetup(a), ErrNoStore)
}
