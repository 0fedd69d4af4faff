//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startPicker(t *testing.T, options ...ConfigOption) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	path, err := tf.WriteFruitConfig(options...)
	require.NoError(t, err, "Failed to write config")

	require.NoError(t, tf.StartApp(path), "Failed to start app")
	return tf
}

func TestArrowNavigationSelects(t *testing.T) {
	t.Parallel()
	tf := startPicker(t, WithPlaceholder("Pick a fruit"))

	require.True(t, tf.SeePlain("Pick a fruit"), "Should show the placeholder")

	require.NoError(t, tf.Press(KeyDown))
	require.True(t, tf.SeePlain("Vegetables"), "Down should open the list")

	// focus starts on the first option, "Nothing"
	require.NoError(t, tf.Press(KeyDown))
	require.NoError(t, tf.Press(KeyEnter))

	code, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, tf.SnapshotPlain(), "fruit:apple", "Should print the chosen value")
}

func TestTypingSeedsFilter(t *testing.T) {
	t.Parallel()
	tf := startPicker(t, WithPlaceholder("Pick a fruit"), WithSearch())

	require.True(t, tf.SeePlain("Pick a fruit"), "Should show the placeholder")

	require.NoError(t, tf.Type("ch"))
	require.True(t, tf.SeePlain("/ ch"), "Typed text should land in the filter input")

	require.NoError(t, tf.Press(KeyEnter))

	code, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, tf.SnapshotPlain(), "fruit:cherry")
}

func TestFilterWithoutMatches(t *testing.T) {
	t.Parallel()
	tf := startPicker(t, WithPlaceholder("Pick a fruit"), WithSearch())

	require.True(t, tf.SeePlain("Pick a fruit"), "Should show the placeholder")

	require.NoError(t, tf.Type("zz"))
	require.True(t, tf.SeePlain("no matches"), "Should report an empty filter result")

	require.NoError(t, tf.Press(KeyEsc))
	require.NoError(t, tf.Press(KeyEsc))

	code, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, code, "Esc on a closed picker cancels")
}

func TestEscapeCancels(t *testing.T) {
	t.Parallel()
	tf := startPicker(t, WithPlaceholder("Pick a fruit"))

	require.True(t, tf.SeePlain("Pick a fruit"), "Should show the placeholder")
	require.NoError(t, tf.Press(KeyEsc))

	code, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, code)
	require.False(t, strings.Contains(tf.SnapshotPlain(), "fruit:"), "Nothing should be printed")
}

func TestCtrlCCancels(t *testing.T) {
	t.Parallel()
	tf := startPicker(t, WithPlaceholder("Pick a fruit"))

	require.True(t, tf.SeePlain("Pick a fruit"), "Should show the placeholder")
	require.NoError(t, tf.Press(KeyDown))
	require.NoError(t, tf.SendKeys(KeyCtrlC))

	code, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, code)
}

func TestKeepOpenPrintsSelectionOnEscape(t *testing.T) {
	t.Parallel()
	tf := startPicker(t, WithKeepOpen(), WithSelected("fruit:banana"))

	require.True(t, tf.SeePlain("Banana"), "Label should show the initial selection")

	require.NoError(t, tf.Press(KeyRight))
	require.True(t, tf.SeePlain("Cherry"), "Right should open the list")
	require.NoError(t, tf.Press(KeyDown))
	require.NoError(t, tf.Press(KeyEnter))

	require.NoError(t, tf.Press(KeyEsc))

	code, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, tf.SnapshotPlain(), "fruit:cherry")
}
