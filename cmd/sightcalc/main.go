// Command sightcalc is a terminal calculator for celestial sight reduction
// by the Law of Cosines.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/term"

	"github.com/litescript/sightcalc/internal/entry"
	"github.com/litescript/sightcalc/internal/logging"
	"github.com/litescript/sightcalc/internal/state"
	"github.com/litescript/sightcalc/internal/ui"
	"github.com/litescript/sightcalc/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode bool
	jsonPath    string
	keyScript   string
	fieldFlags  = map[entry.Field]*string{}
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Log file for the TUI (default under the user config dir)")
	beepMode := flag.Bool("beep", false, "Ring the terminal bell on rejected input (TTY only)")
	showVersion := flag.Bool("version", false, "Print version and exit")

	fieldFlags[entry.LHADegrees] = flag.String("lha", "", "Local Hour Angle, degrees")
	fieldFlags[entry.LHAMinutes] = flag.String("lha-min", "", "Local Hour Angle, minutes")
	fieldFlags[entry.LatDegrees] = flag.String("lat", "", "Latitude, degrees (South negative)")
	fieldFlags[entry.LatMinutes] = flag.String("lat-min", "", "Latitude, minutes")
	fieldFlags[entry.DecDegrees] = flag.String("dec", "", "Declination, degrees (contrary name negative)")
	fieldFlags[entry.DecMinutes] = flag.String("dec-min", "", "Declination, minutes")
	flag.StringVar(&keyScript, "keys", "", "Replay keypad tokens, e.g. \"30 ENTER ENTER 40 F5 20\"")
	flag.StringVar(&jsonPath, "json", "", "Export JSON result to file (use - for stdout)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sightcalc v%s\n", version.Version)
		return
	}

	level := logging.ParseLevel(*logLevel)
	stateMgr := state.NewManager(state.DefaultConfig())

	if isHeadless() {
		logger := logging.New(level)
		if err := runHeadless(stateMgr, logger, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	path := *logFile
	if path == "" {
		path = logging.DefaultFile()
	}
	logger, err := logging.NewFile(level, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	model := ui.New(stateMgr, logger)
	if *beepMode && term.IsTerminal(int(os.Stdout.Fd())) {
		model = model.WithBell(os.Stdout)
	}

	logger.Info("sightcalc v%s starting", version.Version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited: %v", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func isHeadless() bool {
	if summaryMode || jsonPath != "" || keyScript != "" {
		return true
	}
	for _, v := range fieldFlags {
		if *v != "" {
			return true
		}
	}
	return false
}

// runHeadless types the field flags and the key script through the keypad,
// then writes the result. Rejected keys are reported after output.
func runHeadless(stateMgr *state.Manager, logger *logging.Logger, stdout io.Writer) error {
	var result *multierror.Error

	for _, f := range entry.Fields {
		text := *fieldFlags[f]
		if text == "" {
			continue
		}
		result = multierror.Append(result, typeField(stateMgr, f, text))
	}

	if keyScript != "" {
		inputs, err := state.ParseInputs(keyScript)
		if err != nil {
			return fmt.Errorf("parse -keys: %w", err)
		}
		result = multierror.Append(result, replay(stateMgr, inputs))
	}

	snap := stateMgr.Snapshot()
	logger.Debug("headless result: hc=%s z=%s zn=%s", snap.Display.Hc, snap.Display.Z, snap.Display.Zn)

	if jsonPath != "" {
		if err := exportJSON(snap, jsonPath, stdout); err != nil {
			return err
		}
	}
	if summaryMode || jsonPath == "" {
		state.WriteSummary(stdout, snap)
	}

	return result.ErrorOrNil()
}

// typeField selects f and types text into it one key at a time.
func typeField(stateMgr *state.Manager, f entry.Field, text string) error {
	inputs := []state.Input{state.SelectField(f)}
	for _, ch := range text {
		inputs = append(inputs, state.Digit(ch))
	}
	if err := replay(stateMgr, inputs); err != nil {
		return fmt.Errorf("%s %q: %w", f, text, err)
	}
	return nil
}

func replay(stateMgr *state.Manager, inputs []state.Input) error {
	var result *multierror.Error
	for i, in := range inputs {
		active := stateMgr.Snapshot().Active
		if stateMgr.Apply(in) == entry.FeedbackRejected {
			result = multierror.Append(result,
				fmt.Errorf("key %d (%s) rejected in %s", i+1, in, active))
		}
	}
	return result.ErrorOrNil()
}

func exportJSON(snap state.Snapshot, path string, stdout io.Writer) error {
	export := state.ExportSnapshot(snap, time.Now())

	if path == "-" {
		return export.WriteJSON(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := export.WriteJSON(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
