package states

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Descriptions are Markdown. Raw HTML inside them is dropped.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

var cardTemplate = template.Must(template.New("card").Parse(`<article class="state-card" data-abbreviation="{{.Abbreviation}}">
  <header>
    <h2>{{.Name}}</h2>
    <span class="state-card__abbr">{{.Abbreviation}}</span>
  </header>
  <dl>
    <dt>Capital</dt><dd>{{.Capital}}</dd>
    <dt>Nickname</dt><dd>{{.Nickname}}</dd>
    <dt>Population</dt><dd>{{.Population}}</dd>
    <dt>Region</dt><dd>{{.Region}}</dd>
  </dl>
  <div class="state-card__description">{{.Description}}</div>
</article>
`))

type cardData struct {
	Record
	Description template.HTML
}

// WriteCard renders r as an HTML fragment for the detail panel.
func WriteCard(w io.Writer, r Record) error {
	var desc bytes.Buffer
	if err := markdown.Convert([]byte(r.Description), &desc); err != nil {
		return fmt.Errorf("rendering description of %s: %w", r.Abbreviation, err)
	}
	return cardTemplate.Execute(w, cardData{Record: r, Description: template.HTML(desc.String())})
}
