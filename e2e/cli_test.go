//go:build e2e && unix

package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.RunCLI("list", "orders", "--rows", "10", "--page", "2")
	require.NoError(t, err, out)
	assert.Contains(t, out, "11–12 of 12")
	assert.Contains(t, out, "page 2/2")
}

func TestListCommandJSON(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.RunCLI("list", "employees", "--json", "--sort", "name", "--order", "desc")
	require.NoError(t, err, out)

	var got struct {
		Total   int    `json:"total"`
		OrderBy string `json:"order_by"`
		Order   string `json:"order"`
		Rows    []struct {
			ID string `json:"id"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 12, got.Total)
	assert.Equal(t, "name", got.OrderBy)
	assert.Equal(t, "desc", got.Order)
	assert.Len(t, got.Rows, 5)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.RunCLI("version")
	require.NoError(t, err)
	assert.Contains(t, out, "backoffice")
}
