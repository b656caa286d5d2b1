// Package pdf genera la versión imprimible del balance mensual con Maroto v2.
//
// Layout A4:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Distribuidora + período             │
//	│  ──────────────────────────────────────────  │
//	│  INGRESOS: bruto / neto / IVA / por canal    │
//	│  COSTOS: costo promedio, CMV                 │
//	│  GASTOS: tabla por tipo                      │
//	│  RESULTADO: utilidades y márgenes            │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
)

var (
	colorPrimario = &props.Color{Red: 30, Green: 80, Blue: 60}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// BalancePDFGenerator genera el PDF del balance mensual.
type BalancePDFGenerator struct{}

// NewBalancePDFGenerator construye el generador.
func NewBalancePDFGenerator() *BalancePDFGenerator { return &BalancePDFGenerator{} }

// GenerateBalancePDF genera el PDF y devuelve sus bytes.
func (g *BalancePDFGenerator) GenerateBalancePDF(b *dto.BalanceMensualDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Balance %s %d", b.Periodo.MesNombre, b.Periodo.Anio), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(b))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimario, Thickness: 0.5}))

	m.AddRows(seccionRow("INGRESOS"))
	m.AddRows(
		montoRow("Ventas brutas (IVA incluido)", b.Ingresos.TotalBruto, false),
		montoRow("Ventas netas", b.Ingresos.TotalNeto, false),
		montoRow("IVA débito", b.Ingresos.IVA, false),
		textoRow("Kilos vendidos", b.Ingresos.KilosVendidos.String()+" kg"),
		textoRow("N° de ventas", fmt.Sprint(b.Ingresos.NumVentas)),
		montoRow("Ticket promedio", b.Ingresos.TicketPromedio, false),
	)
	for _, canal := range entity.Canales {
		m.AddRows(montoRow("    "+canal, b.Ingresos.PorCanal[canal], false))
	}

	m.AddRows(seccionRow("COSTOS"))
	m.AddRows(
		montoRow("Costo promedio por kg", b.Costos.CostoPromedioKg, false),
		montoRow("Costo de mercadería vendida", b.Costos.CMV, false),
	)

	m.AddRows(seccionRow("GASTOS OPERACIONALES"))
	for _, tipo := range entity.TiposGasto {
		gasto := b.Gastos.PorTipo[tipo]
		m.AddRows(montoRow(tipo, gasto.Total, false))
	}
	m.AddRows(montoRow("Total gastos", b.Gastos.Total, true))

	m.AddRows(seccionRow("RESULTADO"))
	m.AddRows(
		resultadoRow("Utilidad bruta", b.UtilidadBruta, b.MargenBrutoPct),
		resultadoRow("Utilidad operacional", b.UtilidadOperacional, b.MargenOperacionalPct),
		resultadoRow("Utilidad neta", b.UtilidadNeta, b.MargenNetoPct),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar balance: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(b *dto.BalanceMensualDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Distribuidora", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New("Balance de resultados", props.Text{Size: 9, Top: 9, Color: colorGris}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("%s %d", b.Periodo.MesNombre, b.Periodo.Anio), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
		),
	)
}

func seccionRow(titulo string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimario, Top: 3,
			}),
		),
	)
}

func montoRow(etiqueta string, valor decimal.Decimal, destacado bool) core.Row {
	estilo := fontstyle.Normal
	if destacado {
		estilo = fontstyle.Bold
	}
	return row.New(5).Add(
		col.New(8).Add(text.New(etiqueta, props.Text{Size: 9, Style: estilo})),
		col.New(4).Add(text.New("$"+valor.StringFixed(2), props.Text{
			Size: 9, Align: align.Right, Style: estilo,
		})),
	)
}

func textoRow(etiqueta, valor string) core.Row {
	return row.New(5).Add(
		col.New(8).Add(text.New(etiqueta, props.Text{Size: 9})),
		col.New(4).Add(text.New(valor, props.Text{Size: 9, Align: align.Right})),
	)
}

func resultadoRow(etiqueta string, valor, margen decimal.Decimal) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(etiqueta, props.Text{Size: 10, Style: fontstyle.Bold})),
		col.New(4).Add(text.New("$"+valor.StringFixed(2), props.Text{
			Size: 10, Align: align.Right, Style: fontstyle.Bold,
		})),
		col.New(2).Add(text.New(margen.StringFixed(2)+"%", props.Text{
			Size: 9, Align: align.Right, Color: colorGris,
		})),
	)
}
