// Package view renders HTML pages and HTMX fragments.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DateLayout is how dates are shown on every page.
const DateLayout = "02/01/2006 15.04.05"

var printer = message.NewPrinter(language.Indonesian)

// Rupiah formats an amount the way the stall writes it: Rp 31.000.
func Rupiah(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return printer.Sprintf("Rp %d", amount.IntPart())
	}
	return printer.Sprintf("Rp %v", number.Decimal(amount.InexactFloat64(), number.MaxFractionDigits(2)))
}

// Renderer executes the embedded templates.
type Renderer struct {
	templates *template.Template
	location  *time.Location
}

// New parses the embedded templates. Dates are rendered in loc.
func New(loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}

	r := &Renderer{location: loc}

	t, err := template.New("").Funcs(template.FuncMap{
		"rupiah":  Rupiah,
		"tanggal": r.Date,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r.templates = t

	return r, nil
}

// Date formats t in the renderer location.
func (r *Renderer) Date(t time.Time) string {
	return t.In(r.location).Format(DateLayout)
}

// IndexPage is the data of the main page.
type IndexPage struct {
	Orders []*entities.Order
	Total  decimal.Decimal
}

// PrintPage is the data of the printable summary.
type PrintPage struct {
	Archive *entities.Archive
	Reprint bool
}

// HistoryPage is the data of the archive list.
type HistoryPage struct {
	Archives []*entities.Archive
}

func (r *Renderer) Index(w io.Writer, orders []*entities.Order, total decimal.Decimal) error {
	return r.render(w, "index", IndexPage{Orders: orders, Total: total})
}

// OrderItem renders the read-only row of an order.
func (r *Renderer) OrderItem(w io.Writer, order *entities.Order) error {
	return r.render(w, "order-item", order)
}

// OrderEditForm renders the row of an order as a form.
func (r *Renderer) OrderEditForm(w io.Writer, order *entities.Order) error {
	return r.render(w, "order-edit-form", order)
}

func (r *Renderer) Print(w io.Writer, archive *entities.Archive, reprint bool) error {
	return r.render(w, "print", PrintPage{Archive: archive, Reprint: reprint})
}

func (r *Renderer) History(w io.Writer, archives []*entities.Archive) error {
	return r.render(w, "history", HistoryPage{Archives: archives})
}

// render buffers the output, a failed template never leaves half a page.
func (r *Renderer) render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer

	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)

	return err
}
