package tui_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyorci/conveyor/internal/tui"
)

func TestTTYOutput_Messages(t *testing.T) {
	var buf bytes.Buffer
	out := tui.NewTTYOutput(&buf)

	out.Success("workflow valid")
	out.Warning("no jobs matched")
	out.Info("loading workflow")
	out.Error(errors.New("parse failed"))

	got := buf.String()
	assert.Contains(t, got, "✓ workflow valid")
	assert.Contains(t, got, "⚠ no jobs matched")
	assert.Contains(t, got, "loading workflow")
	assert.Contains(t, got, "✗ parse failed")
}

func TestJSONOutput_Messages(t *testing.T) {
	var buf bytes.Buffer
	out := tui.NewJSONOutput(&buf)

	out.Success("done")
	out.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]string
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))

	assert.Equal(t, map[string]string{"type": "success", "message": "done"}, first)
	assert.Equal(t, map[string]string{"type": "error", "message": "boom"}, second)
}

func TestJSONOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	out := tui.NewJSONOutput(&buf)

	require.NoError(t, out.JSON(map[string]int{"jobs": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["jobs"])
}

func TestNewOutput_FormatSelection(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &tui.JSONOutput{}, tui.NewOutput(&buf, "json"))
	assert.IsType(t, &tui.TTYOutput{}, tui.NewOutput(&buf, "text"))
	assert.IsType(t, &tui.TTYOutput{}, tui.NewOutput(&buf, ""))
}
