//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAndQuit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("01. Orders"), "dashboard menu should render")
	require.True(t, tf.SeePlain("Dashboard"))

	require.NoError(t, tf.Quit())
	assert.NoError(t, tf.WaitExit(2*time.Second))
}

func TestOpenFeatureFromMenu(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("01. Orders"))

	mark := tf.Mark()
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlainAfter(mark, "Inventory"), "inventory table should open")
	require.True(t, tf.SeePlainAfter(mark, "Page 1/3"), "12 records at 5 per page")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys("l"))
	require.True(t, tf.SeePlainAfter(mark, "Page 2/3"))

	require.NoError(t, tf.SendKeys(KeyCtrlC))
	assert.NoError(t, tf.WaitExit(2*time.Second))
}

func TestSelectAndBulkDelete(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--feature", "orders"))
	require.True(t, tf.SeePlain("Page 1/3"))

	mark := tf.Mark()
	tf.Type(KeySpace + KeyDown + KeySpace)
	require.True(t, tf.SeePlainAfter(mark, "2 selected"))

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys("D"))
	require.True(t, tf.SeePlainAfter(mark, "Delete 2 selected records?"))

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys("y"))
	require.True(t, tf.SeePlainAfter(mark, "2 records deleted"), "toast should confirm the delete")
	require.True(t, tf.SeePlainAfter(mark, "Page 1/2"))

	require.NoError(t, tf.Quit())
	assert.NoError(t, tf.WaitExit(2*time.Second))
}

func TestSearchWithoutMatches(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-f", "categories"))
	require.True(t, tf.SeePlain("Categories"))

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeySearch))
	tf.Type("zzzqqq")
	require.True(t, tf.SeePlainAfter(mark, "No data"))

	require.NoError(t, tf.SendKeys(KeyCtrlC))
	assert.NoError(t, tf.WaitExit(2*time.Second))
}

func TestUnknownFeatureFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.RunCLI("--feature", "nope")
	require.Error(t, err)
	assert.Contains(t, out, "unknown feature")
}
