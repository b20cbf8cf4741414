// Package renderer turns shop data into markdown documents, and markdown
// documents into printable HTML.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderInvoice renders the invoice of a single order to markdown.
func RenderInvoice(inv *Invoice) string {
	return renderTemplate("invoice", "invoice.md", inv)
}

// RenderInventory renders the inventory table to markdown.
func RenderInventory(inv *Inventory) string {
	return renderTemplate("inventory", "inventory.md", inv)
}

// RenderOrders renders the order history to markdown.
func RenderOrders(o *Orders) string {
	return renderTemplate("orders", "orders.md", o)
}

// renderTemplate renders an embedded template.
// Templates are part of the binary, a failure is reported in the output.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
