package config

import (
	"fmt"
	"io"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

const doneItem = "Done"

// themeItems lists the editor menu: one "Label (value)" row per theme key,
// then Done.
func themeItems(t theme.Config) []string {
	items := make([]string, 0, len(theme.Fields)+1)
	for _, f := range theme.Fields {
		v, _ := t.Get(f.Key)
		items = append(items, fmt.Sprintf("%-16s %s", f.Label, v))
	}
	return append(items, doneItem)
}

func validateColor(v string) error {
	if !theme.ValidColor(v) {
		return fmt.Errorf("%q: %w", v, theme.ErrInvalidColor)
	}
	return nil
}

// EditTheme runs an interactive editor over the six theme colors and
// returns the edited theme. Each change replaces exactly one key. Nil
// readers and writers fall back to the terminal.
func EditTheme(t theme.Config, in io.ReadCloser, out io.WriteCloser) (theme.Config, error) {
	for {
		menu := promptui.Select{
			Label:  "Select a color to edit",
			Items:  themeItems(t),
			Size:   len(theme.Fields) + 1,
			Stdin:  in,
			Stdout: out,
		}
		idx, _, err := menu.Run()
		if err != nil {
			return t, fmt.Errorf("theme selection: %w", err)
		}
		if idx == len(theme.Fields) {
			return t, nil
		}

		field := theme.Fields[idx]
		current, _ := t.Get(field.Key)
		prompt := promptui.Prompt{
			Label:    field.Label,
			Default:  current,
			Validate: validateColor,
			Stdin:    in,
			Stdout:   out,
		}
		value, err := prompt.Run()
		if err != nil {
			return t, fmt.Errorf("editing %s: %w", field.Key, err)
		}
		next, err := t.With(field.Key, value)
		if err != nil {
			return t, err
		}
		t = next
	}
}

// RunThemeWizard edits cfg.Theme on the terminal and saves cfg to path.
func RunThemeWizard(cfg *Config, path string) error {
	fmt.Println("Edit the globe theme. Colors are hex values such as #38bdf8.")
	fmt.Println()

	t, err := EditTheme(cfg.Theme, nil, nil)
	if err != nil {
		return err
	}
	cfg.Theme = t

	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("\nTheme saved to %s\n", path)
	return nil
}
