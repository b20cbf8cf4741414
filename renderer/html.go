package renderer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// FontFamily is the CSS family name of the embedded font.
const FontFamily = "ShopkeeperInvoice"

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.FontFace}}
body { font-family: {{.Family}}; max-width: 48em; margin: 2em auto; color: #222; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
th, td { border-bottom: 1px solid #ccc; padding: 0.3em 0.6em; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
{{.Body}}</body>
</html>
`))

// HTML converts a markdown document into a standalone printable HTML page.
//
// When font is not empty it is embedded in the page as a TrueType font, so
// that currency glyphs render without relying on system fonts. The output
// only depends on the arguments.
func HTML(title, md string, font []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("could not convert markdown: %w", err)
	}

	data := struct {
		Title    string
		FontFace template.CSS
		Family   template.CSS
		Body     template.HTML
	}{
		Title:  title,
		Family: "sans-serif",
		Body:   template.HTML(body.String()),
	}
	if len(font) > 0 {
		data.FontFace = template.CSS(fmt.Sprintf("@font-face { font-family: %q; src: url(data:font/ttf;base64,%s) format(\"truetype\"); }",
			FontFamily, base64.StdEncoding.EncodeToString(font)))
		data.Family = template.CSS(fmt.Sprintf("%q, sans-serif", FontFamily))
	}

	var out bytes.Buffer
	if err := page.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("could not render page: %w", err)
	}
	return out.Bytes(), nil
}
