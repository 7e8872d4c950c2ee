// Package pdf implementa la representación gráfica local de una factura
// decodificada (comando `factulink pdf`). Nada de esto toca la red: el PDF
// se genera en la máquina del usuario a partir del fragmento hash.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor  │  Factura (id corto) + emitida/vence      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: contacto opcional                                  │
//	│  CLIENTE: nombre + contacto opcional                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Precio | Importe               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / Descuento / TOTAL           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS + red de pago y wallet                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/factulink/internal/domain/codec"
	"github.com/jhoicas/factulink/internal/domain/entity"
	"github.com/jhoicas/factulink/internal/domain/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 85, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer formatea montos con separadores de miles en español. Solo para la
// representación gráfica: el monto que paga el cliente es el codificado en
// el enlace, no lo que diga el PDF.
var printer = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera el PDF de la factura usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. El total del bloque
// de totales sale de la ruta exacta de money.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(inv *entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+shortID(inv.InvoiceID), true).
		WithAuthor(inv.From.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow("EMISOR", &inv.From))
	m.AddRows(partyRow("CLIENTE", &inv.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(inv) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	totals, err := totalsRow(inv)
	if err != nil {
		return nil, err
	}
	m.AddRows(totals)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(inv) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq) e identificación de la factura (der).
func headerRow(inv *entity.Invoice) core.Row {
	issued := time.Unix(inv.IssuedAt, 0).UTC().Format("02/01/2006")
	due := "—"
	if inv.DueAt > 0 {
		due = time.Unix(inv.DueAt, 0).UTC().Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(inv.From.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Factura compartida por enlace", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA "+shortID(inv.InvoiceID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Emitida: "+issued, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Vence: "+due, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// partyRow: bloque de contacto de una parte.
func partyRow(label string, p *entity.Party) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Email: %s   |   Tel: %s",
				p.Name,
				nonEmpty(p.Email, "—"),
				nonEmpty(p.Phone, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura.
func tableItemRows(inv *entity.Invoice) []core.Row {
	result := make([]core.Row, 0, len(inv.Items))
	for _, it := range inv.Items {
		lineTotal := "—"
		if rate, err := decimal.NewFromString(it.Rate); err == nil {
			lineTotal = formatMoney(rate.Mul(it.Quantity).StringFixed(2))
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(it.Rate),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				lineTotal,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales; el TOTAL sale de la ruta exacta.
func totalsRow(inv *entity.Invoice) (core.Row, error) {
	total, err := money.Total(inv.Items, inv.Decimals, inv.Tax, inv.Discount)
	if err != nil {
		return nil, fmt.Errorf("pdf: total de la factura: %w", err)
	}
	subtotal, err := money.Total(inv.Items, inv.Decimals, "", "")
	if err != nil {
		return nil, fmt.Errorf("pdf: subtotal de la factura: %w", err)
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("TOTAL A PAGAR:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	})
	grandValue := text.New(
		formatMoney(money.FormatAtomic(total, inv.Decimals))+" "+inv.Currency,
		props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		},
	)

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Tax / Descuento:"),
			grandLabel,
		),
		col.New(3).Add(
			value(formatMoney(money.FormatAtomic(subtotal, inv.Decimals))),
			value(fmt.Sprintf("%s / %s", nonEmpty(inv.Tax, "—"), nonEmpty(inv.Discount, "—"))),
			grandValue,
		),
		col.New(3),
	), nil
}

// footerRows: notas y datos de pago on-chain.
func footerRows(inv *entity.Invoice) []core.Row {
	payLine := fmt.Sprintf("Red: %s (chain id %d)   |   Token: %s",
		codec.NetworkCode(inv.NetworkID), inv.NetworkID, inv.Currency)
	if inv.From.Wallet != "" {
		payLine += "   |   Wallet: " + inv.From.Wallet
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(payLine, props.Text{Size: 7, Color: colorGray, Top: 1}),
		)),
	}
	if inv.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Notas: "+inv.Notes, props.Text{Size: 7, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney agrupa miles al estilo español (1.234,56) para la vista del
// PDF. Pasa por float64 solo para el formato; el valor exacto vive en la
// cadena decimal de la factura.
func formatMoney(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return printer.Sprintf("%v", number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func shortID(id string) string {
	compact := ""
	for _, r := range id {
		if r != '-' {
			compact += string(r)
		}
	}
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return compact
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
