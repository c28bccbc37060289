package state

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/sightcalc/internal/entry"
)

// SnapshotExport is the JSON-serializable representation of a session.
type SnapshotExport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	ActiveField entry.Field  `json:"active_field"`
	Inputs      InputsExport `json:"inputs"`
	Result      ResultExport `json:"result"`
}

// InputsExport holds the three angle pairs.
type InputsExport struct {
	LHA AngleExport `json:"lha"`
	Lat AngleExport `json:"lat"`
	Dec AngleExport `json:"dec"`
}

// AngleExport is one pair's field text and its combined value.
type AngleExport struct {
	Degrees string  `json:"degrees"`
	Minutes string  `json:"minutes"`
	Decimal float64 `json:"decimal"`
}

// ResultExport holds the formatted reduction.
type ResultExport struct {
	Hc        string `json:"hc"`
	HcDegrees string `json:"hc_degrees"`
	HcMinutes string `json:"hc_minutes"`
	Z         string `json:"z"`
	Zn        string `json:"zn"`
	HcValid   bool   `json:"hc_valid"`
	ZValid    bool   `json:"z_valid"`
	Error     string `json:"error,omitempty"`
}

// ExportSnapshot converts a snapshot to an exportable format.
func ExportSnapshot(snap Snapshot, generatedAt time.Time) *SnapshotExport {
	export := &SnapshotExport{
		GeneratedAt: generatedAt,
		ActiveField: snap.Active,
		Inputs: InputsExport{
			LHA: angleExport(snap.Buffers.LHA, snap.Values.LHA),
			Lat: angleExport(snap.Buffers.Lat, snap.Values.Lat),
			Dec: angleExport(snap.Buffers.Dec, snap.Values.Dec),
		},
		Result: ResultExport{
			Hc:        snap.Display.Hc,
			HcDegrees: snap.Display.HcDeg,
			HcMinutes: snap.Display.HcMin,
			Z:         snap.Display.Z,
			Zn:        snap.Display.Zn,
			HcValid:   snap.Reduction.HcValid(),
			ZValid:    snap.Reduction.ZValid(),
		},
	}

	if err := snap.Reduction.HcErr; err != nil {
		export.Result.Error = err.Error()
	} else if err := snap.Reduction.ZErr; err != nil {
		export.Result.Error = err.Error()
	}

	return export
}

func angleExport(p entry.Pair, decimal float64) AngleExport {
	return AngleExport{
		Degrees: p.Degrees,
		Minutes: p.Minutes,
		Decimal: decimal,
	}
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummary writes a plain text summary of the inputs and results.
func WriteSummary(w io.Writer, snap Snapshot) {
	fmt.Fprintln(w, "Intercept and Azimuth by Law of Cosines")
	fmt.Fprintln(w, strings.Repeat("─", 44))

	fmt.Fprintf(w, "%-5s %10s %10s %14s\n", "", "Degrees", "Minutes", "Decimal")
	pairs := []struct {
		name  string
		pair  entry.Pair
		value float64
	}{
		{"LHA", snap.Buffers.LHA, snap.Values.LHA},
		{"Lat", snap.Buffers.Lat, snap.Values.Lat},
		{"Dec", snap.Buffers.Dec, snap.Values.Dec},
	}
	for _, p := range pairs {
		fmt.Fprintf(w, "%-5s %10s %10s %14.5f\n", p.name, p.pair.Degrees, p.pair.Minutes, p.value)
	}

	fmt.Fprintln(w, strings.Repeat("─", 44))
	d := snap.Display
	if snap.Reduction.HcValid() {
		fmt.Fprintf(w, "Hc:  %s°  %s° %s'\n", d.Hc, d.HcDeg, d.HcMin)
	} else {
		fmt.Fprintf(w, "Hc:  %s\n", d.Hc)
	}
	fmt.Fprintf(w, "Z:   %s\n", withDegree(d.Z, snap.Reduction.ZValid()))
	fmt.Fprintf(w, "Zn:  %s\n", withDegree(d.Zn, snap.Reduction.ZValid()))
}

func withDegree(s string, ok bool) string {
	if !ok {
		return s
	}
	return s + "°"
}
