// Package embed generates the standalone globe widget: one HTML document
// with the dataset and theme inlined, reproducing the live globe's layout
// with hover tooltips and idle rotation.
package embed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/ziadkadry99/globe-explorer/internal/geo"
	"github.com/ziadkadry99/globe-explorer/internal/scene"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

// ThreeVersion is the three.js release the widget loads from the CDN.
const ThreeVersion = "0.160.0"

// record is a dataset entry with its marker position precomputed, so the
// widget never repeats the projection math.
type record struct {
	states.Record
	Position [3]float64 `json:"position"`
}

type document struct {
	Theme       theme.Config
	Three       string
	States      string
	GlobeRadius float64
	HaloRadius  float64
	BallRadius  float64
	ConeRadius  float64
	ConeHeight  float64
	ConeOffset  float64
	RotateStep  float64
	PinEmissive float64
	CameraFOV   float64
	CameraNear  float64
	CameraFar   float64
	CameraZ     float64
}

var funcs = template.FuncMap{
	"num": func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
}

var page = template.Must(template.New("embed").Funcs(funcs).Parse(pageTemplate))

// Generate returns the widget document for t and records. Output depends
// only on its inputs.
func Generate(t theme.Config, records []states.Record) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t, records); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write streams the widget document to w.
func Write(w io.Writer, t theme.Config, records []states.Record) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("embed theme: %w", err)
	}
	data, err := encodeStates(records)
	if err != nil {
		return err
	}
	doc := document{
		Theme:       t,
		Three:       ThreeVersion,
		States:      data,
		GlobeRadius: scene.GlobeRadius,
		HaloRadius:  scene.HaloRadius,
		BallRadius:  scene.PinBallRadius,
		ConeRadius:  scene.PinConeRadius,
		ConeHeight:  scene.PinConeHeight,
		ConeOffset:  scene.PinConeOffset,
		RotateStep:  scene.AutoRotateStep,
		PinEmissive: scene.PinEmissiveIntensity,
		CameraFOV:   45,
		CameraNear:  0.1,
		CameraFar:   1000,
		CameraZ:     5,
	}
	if err := page.Execute(w, doc); err != nil {
		return fmt.Errorf("rendering embed: %w", err)
	}
	return nil
}

func encodeStates(records []states.Record) (string, error) {
	out := make([]record, 0, len(records))
	for _, r := range records {
		if err := geo.CheckCoordinates(r.Latitude, r.Longitude); err != nil {
			return "", fmt.Errorf("embed %q: %w", r.Abbreviation, err)
		}
		p := geo.Project(r.Latitude, r.Longitude, scene.MarkerRadius)
		out = append(out, record{Record: r, Position: [3]float64{p.X(), p.Y(), p.Z()}})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return "", fmt.Errorf("encoding states: %w", err)
	}
	// A literal "</script>" inside a string would close the script element.
	js := bytes.ReplaceAll(bytes.TrimRight(buf.Bytes(), "\n"), []byte("</"), []byte(`<\/`))
	return string(js), nil
}
