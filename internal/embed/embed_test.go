package embed

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/globe-explorer/internal/geo"
	"github.com/ziadkadry99/globe-explorer/internal/scene"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

func records() []states.Record {
	return []states.Record{
		{Abbreviation: "CA", Name: "California", Capital: "Sacramento", Latitude: 36.7, Longitude: -119.4},
		{Abbreviation: "NY", Name: "New York", Capital: "Albany", Latitude: 43.0, Longitude: -75.0},
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(theme.Default(), records())
	require.NoError(t, err)
	b, err := Generate(theme.Default(), records())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_ContainsDataAndTheme(t *testing.T) {
	th := theme.Default()
	out, err := Generate(th, records())
	require.NoError(t, err)

	for _, r := range records() {
		assert.Contains(t, out, r.Name)
		assert.Contains(t, out, r.Capital)
	}
	for _, v := range th.Values() {
		assert.Contains(t, out, v)
	}
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "three@"+ThreeVersion)
}

func TestGenerate_HoverOnly(t *testing.T) {
	out, err := Generate(theme.Default(), records())
	require.NoError(t, err)

	assert.NotContains(t, out, "OrbitControls")
	assert.Contains(t, out, "pointermove")
	assert.NotContains(t, out, "pointerdown")
	assert.Contains(t, out, "globe.rotation.y += 0.002;")
}

func TestGenerate_SharedLayoutConstants(t *testing.T) {
	out, err := Generate(theme.Default(), records())
	require.NoError(t, err)

	assert.Contains(t, out, "new THREE.SphereGeometry(1.8, 72, 72)")
	assert.Contains(t, out, "new THREE.SphereGeometry(1.92, 64, 64)")
	assert.Contains(t, out, "new THREE.ConeGeometry(0.025, 0.12, 16)")
	assert.Contains(t, out, "cone.position.z = 0.08;")
	assert.Contains(t, out, "new THREE.SphereGeometry(0.035, 16, 16)")
}

var statesLine = regexp.MustCompile(`(?m)^\s*const states = (.*);$`)

func TestGenerate_PrecomputedPositions(t *testing.T) {
	out, err := Generate(theme.Default(), records())
	require.NoError(t, err)

	m := statesLine.FindStringSubmatch(out)
	require.Len(t, m, 2)
	var got []struct {
		Abbreviation string     `json:"abbreviation"`
		Position     [3]float64 `json:"position"`
	}
	require.NoError(t, json.Unmarshal([]byte(m[1]), &got))
	require.Len(t, got, 2)

	for i, r := range records() {
		want := geo.Project(r.Latitude, r.Longitude, scene.MarkerRadius)
		assert.Equal(t, r.Abbreviation, got[i].Abbreviation)
		assert.Equal(t, [3]float64{want.X(), want.Y(), want.Z()}, got[i].Position)
	}
}

func TestGenerate_EscapesScriptClose(t *testing.T) {
	rs := records()
	rs[0].Description = `</script><script>alert("x")</script> & <b>`

	out, err := Generate(theme.Default(), rs)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "</script>"))
	assert.Contains(t, out, `<\/script><script>alert(\"x\")<\/script> & <b>`)
}

func TestGenerate_InvalidTheme(t *testing.T) {
	th := theme.Default()
	th.PinColor = "red'); alert(1); ('"

	_, err := Generate(th, records())
	assert.ErrorIs(t, err, theme.ErrInvalidColor)
}

func TestGenerate_RejectsAlphaColors(t *testing.T) {
	for _, v := range []string{"#f472b680", "#f47a"} {
		th := theme.Default()
		th.PinColor = v

		out, err := Generate(th, records())
		assert.ErrorIs(t, err, theme.ErrInvalidColor, v)
		assert.Empty(t, out)
	}
}

func TestGenerate_MaterialColorsAreOpaqueHex(t *testing.T) {
	th := theme.Default()
	th.PinColor = "#f0a"
	out, err := Generate(th, records())
	require.NoError(t, err)

	colors := regexp.MustCompile(`(?:color|emissive): '([^']*)'`).FindAllStringSubmatch(out, -1)
	require.NotEmpty(t, colors)
	valid := regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	for _, m := range colors {
		assert.Regexp(t, valid, m[1])
	}
}

func TestGenerate_InvalidCoordinates(t *testing.T) {
	rs := records()
	rs[1].Latitude = 120

	_, err := Generate(theme.Default(), rs)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinates)
}

func TestGenerate_EmptyDataset(t *testing.T) {
	out, err := Generate(theme.Default(), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "const states = [];")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := Write(failingWriter{}, theme.Default(), records())
	assert.Error(t, err)
}

func TestWrite_MatchesGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, theme.Default(), records()))
	out, err := Generate(theme.Default(), records())
	require.NoError(t, err)
	assert.Equal(t, out, buf.String())
}
