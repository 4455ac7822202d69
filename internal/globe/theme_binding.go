package globe

import (
	"github.com/ziadkadry99/globe-explorer/internal/scene"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

// Handles are the live materials that theme binding writes to.
type Handles struct {
	Background *scene.Background
	Body       scene.Material
	Halo       scene.Material
	Markers    *scene.MarkerSet
}

// ApplyTheme colors the backdrop, globe body, halo and markers from t. The marker
// whose key equals selected gets the highlight color and is scaled up;
// every other marker is reset to the pin color and unit scale. The result
// depends only on (t, selected), so repeated calls are harmless.
func ApplyTheme(h Handles, t theme.Config, selected string) {
	ocean := t.Color(theme.KeyOceanColor)
	land := t.Color(theme.KeyLandColor)
	pin := t.Color(theme.KeyPinColor)
	highlight := t.Color(theme.KeyHighlightColor)

	if h.Background != nil {
		h.Background.Inner = t.Color(theme.KeyBackgroundA)
		h.Background.Outer = t.Color(theme.KeyBackgroundB)
	}
	if h.Body != nil {
		body := h.Body.State()
		body.Color = land
		body.Emissive = ocean
	}
	if h.Halo != nil {
		h.Halo.State().Color = ocean
	}
	if h.Markers == nil {
		return
	}

	key := states.NormalizeKey(selected)
	for _, m := range h.Markers.Markers() {
		if m.Key == key {
			m.SetColor(highlight)
			m.Group.SetScalar(scene.SelectedScale)
		} else {
			m.SetColor(pin)
			m.Group.SetScalar(1)
		}
	}
}
