package chartjs

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/woodruffw/pledger-chart/internal/model"
)

//go:embed chart.html.tmpl
var pageTemplate string

var page = template.Must(template.New("chart").Parse(pageTemplate))

type pageData struct {
	Title string
	Net   template.JS
	Tags  template.JS
}

// Render writes a standalone HTML page with both charts. The chart payloads
// are embedded as JSON literals inside the page's script block.
func Render(w io.Writer, title string, net, tags model.ChartData) error {
	netJSON, err := Marshal(net)
	if err != nil {
		return fmt.Errorf("encoding net chart: %w", err)
	}
	tagsJSON, err := Marshal(tags)
	if err != nil {
		return fmt.Errorf("encoding tag chart: %w", err)
	}

	data := pageData{
		Title: title,
		Net:   template.JS(netJSON),
		Tags:  template.JS(tagsJSON),
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("rendering chart page: %w", err)
	}
	return nil
}
