package setup

import (
	"errors"
	"fmt"
	"io"

	"github.com/Utility-Gods/bmichart/internal/app"
	"github.com/Utility-Gods/bmichart/internal/db"
	"github.com/manifoldco/promptui"
)

const (
	actionColor  = "Toggle coloured chart output"
	actionStrict = "Toggle stopping on invalid numbers"
	actionShow   = "Show settings"
	actionReset  = "Reset to defaults"
	actionExit   = "Exit Setup"
)

// ErrNoStore is returned when setup runs without a settings database.
var ErrNoStore = errors.New("settings database unavailable")

func RunSetup(a *app.App) error {
	if a.Store == nil {
		return ErrNoStore
	}

	for {
		prompt := promptui.Select{
			Label: "Select action",
			Items: []string{actionColor, actionStrict, actionShow, actionReset, actionExit},
		}

		_, result, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}

		done, err := apply(a, result, a.Out())
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// apply performs one menu action and reports whether setup should end.
// Toggles start from the stored settings, so one-off flag overrides held in
// a.Settings are never written back.
func apply(a *app.App, action string, out io.Writer) (bool, error) {
	switch action {
	case actionReset:
		if err := a.Store.FlushDB(); err != nil {
			return false, fmt.Errorf("failed to reset settings: %w", err)
		}
		a.Settings = db.DefaultSettings()
		fmt.Fprintln(out, "Settings reset to defaults.")
		return false, nil
	case actionShow:
		return false, showSettings(a.Store, out)
	case actionExit:
		return true, nil
	case actionColor, actionStrict:
	default:
		return false, fmt.Errorf("unknown action %q", action)
	}

	stored, err := a.Store.Load()
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}
	if action == actionColor {
		stored.Color = !stored.Color
	} else {
		stored.StrictNumbers = !stored.StrictNumbers
	}

	if err := a.Store.Save(stored); err != nil {
		return false, fmt.Errorf("failed to save settings: %w", err)
	}
	a.Settings = stored
	return false, showSettings(a.Store, out)
}

func showSettings(store *db.Store, out io.Writer) error {
	s, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	version, err := store.SchemaVersion()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Coloured chart output: %s\n", onOff(s.Color))
	fmt.Fprintf(out, "Stop on invalid numbers: %s\n", onOff(s.StrictNumbers))
	fmt.Fprintf(out, "Settings schema version: %d\n", version)
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
