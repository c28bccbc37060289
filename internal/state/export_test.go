package state

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/sightcalc/internal/astro"
)

func TestExportSnapshot(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "3 0 F3 4 0 F4 3 0 F5 2 0")
	snap := m.Snapshot()

	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	export := ExportSnapshot(snap, at)

	assert.Equal(t, at, export.GeneratedAt)
	assert.Equal(t, "30", export.Inputs.LHA.Degrees)
	assert.Equal(t, "40", export.Inputs.Lat.Degrees)
	assert.Equal(t, "30", export.Inputs.Lat.Minutes)
	assert.InDelta(t, 40.5, export.Inputs.Lat.Decimal, 1e-12)
	assert.Equal(t, snap.Display.Hc, export.Result.Hc)
	assert.Equal(t, snap.Display.Zn, export.Result.Zn)
	assert.True(t, export.Result.HcValid)
	assert.True(t, export.Result.ZValid)
	assert.Empty(t, export.Result.Error)
}

func TestExportSnapshot_DomainError(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "F3 9 0 F5 2 0")
	export := ExportSnapshot(m.Snapshot(), time.Now())

	assert.True(t, export.Result.HcValid)
	assert.False(t, export.Result.ZValid)
	assert.Equal(t, astro.NoSolution, export.Result.Z)
	assert.NotEmpty(t, export.Result.Error)
}

func TestSnapshotExport_WriteJSON(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "3 0 F3 4 0 F5 2 0 F2")
	export := ExportSnapshot(m.Snapshot(), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "LHA'", decoded["active_field"])
	result, ok := decoded["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "57.48508", result["hc"])
	assert.Equal(t, "241", result["zn"])
	assert.NotContains(t, result, "error")

	inputs, ok := decoded["inputs"].(map[string]any)
	require.True(t, ok)
	lha, ok := inputs["lha"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "30", lha["degrees"])
	assert.Equal(t, 30.0, lha["decimal"])
}

func TestWriteSummary(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "3 0 F3 4 0 F5 2 0")

	var buf bytes.Buffer
	WriteSummary(&buf, m.Snapshot())
	out := buf.String()

	assert.Contains(t, out, "Law of Cosines")
	assert.Contains(t, out, "Hc:  57.48508°  57° 29.1'")
	assert.Contains(t, out, "Z:   119.1°")
	assert.Contains(t, out, "Zn:  241°")
	assert.Equal(t, 1, strings.Count(out, "LHA"))
}

func TestWriteSummary_NoSolution(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "F3 9 0")

	var buf bytes.Buffer
	WriteSummary(&buf, m.Snapshot())

	assert.Contains(t, buf.String(), "Zn:  "+astro.NoSolution+"\n")
}
