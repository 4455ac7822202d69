// Package theme holds the six-color configuration shared by the live globe,
// the software renderer and the embed generator.
package theme

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/ziadkadry99/globe-explorer/internal/scene"
)

var (
	// ErrUnknownKey is returned by With for keys outside the six theme keys.
	ErrUnknownKey = errors.New("unknown theme key")
	// ErrInvalidColor is returned for values that are not hex colors.
	ErrInvalidColor = errors.New("invalid color")
)

// Key names one of the six theme colors.
type Key string

const (
	KeyBackgroundA    Key = "backgroundA"
	KeyBackgroundB    Key = "backgroundB"
	KeyOceanColor     Key = "oceanColor"
	KeyLandColor      Key = "landColor"
	KeyPinColor       Key = "pinColor"
	KeyHighlightColor Key = "highlightColor"
)

// Field describes an editable theme key.
type Field struct {
	Key   Key
	Label string
}

// Fields lists the theme keys in editor order.
var Fields = []Field{
	{Key: KeyBackgroundA, Label: "Background Inner"},
	{Key: KeyBackgroundB, Label: "Background Outer"},
	{Key: KeyOceanColor, Label: "Ocean"},
	{Key: KeyLandColor, Label: "Land"},
	{Key: KeyPinColor, Label: "Pin"},
	{Key: KeyHighlightColor, Label: "Highlight"},
}

// Config is the color theme. Values are CSS hex colors.
type Config struct {
	BackgroundA    string `json:"backgroundA" yaml:"backgroundA" koanf:"backgroundA"`
	BackgroundB    string `json:"backgroundB" yaml:"backgroundB" koanf:"backgroundB"`
	OceanColor     string `json:"oceanColor" yaml:"oceanColor" koanf:"oceanColor"`
	LandColor      string `json:"landColor" yaml:"landColor" koanf:"landColor"`
	PinColor       string `json:"pinColor" yaml:"pinColor" koanf:"pinColor"`
	HighlightColor string `json:"highlightColor" yaml:"highlightColor" koanf:"highlightColor"`
}

// Default returns the stock slate/sky theme.
func Default() Config {
	return Config{
		BackgroundA:    "#0f172a",
		BackgroundB:    "#020617",
		OceanColor:     "#0ea5e9",
		LandColor:      "#38bdf8",
		PinColor:       "#f472b6",
		HighlightColor: "#facc15",
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidColor reports whether v is a #rgb or #rrggbb color. Alpha forms are
// rejected because three.js cannot parse them in the exported widget.
func ValidColor(v string) bool { return hexColor.MatchString(v) }

// Get returns the value stored under key.
func (c Config) Get(key Key) (string, error) {
	p := c.slot(key)
	if p == nil {
		return "", fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
	return *p, nil
}

// With returns a copy of c with exactly one key replaced. c is unchanged
// when the key or value is rejected.
func (c Config) With(key Key, value string) (Config, error) {
	p := c.slot(key)
	if p == nil {
		return c, fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
	if !ValidColor(value) {
		return c, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidColor)
	}
	*p = value
	return c, nil
}

// Validate checks every color value.
func (c Config) Validate() error {
	var errs []error
	for _, f := range Fields {
		v, _ := c.Get(f.Key)
		if !ValidColor(v) {
			errs = append(errs, fmt.Errorf("%s=%q: %w", f.Key, v, ErrInvalidColor))
		}
	}
	return errors.Join(errs...)
}

// Values returns the colors in Fields order.
func (c Config) Values() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i], _ = c.Get(f.Key)
	}
	return out
}

// FillDefaults replaces empty values with the defaults.
func (c Config) FillDefaults() Config {
	d := Default()
	for _, f := range Fields {
		if v, _ := c.Get(f.Key); v == "" {
			dv, _ := d.Get(f.Key)
			*c.slot(f.Key) = dv
		}
	}
	return c
}

// Color parses the value stored under key.
func (c Config) Color(key Key) scene.Color {
	v, _ := c.Get(key)
	return scene.ColorFromHex(v)
}

func (c *Config) slot(key Key) *string {
	switch key {
	case KeyBackgroundA:
		return &c.BackgroundA
	case KeyBackgroundB:
		return &c.BackgroundB
	case KeyOceanColor:
		return &c.OceanColor
	case KeyLandColor:
		return &c.LandColor
	case KeyPinColor:
		return &c.PinColor
	case KeyHighlightColor:
		return &c.HighlightColor
	}
	return nil
}
