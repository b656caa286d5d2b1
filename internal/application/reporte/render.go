// Package reporte serializa los balances a texto plano, JSON y CSV para la
// salida del generador de reportes.
package reporte

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
)

// Formatos de salida soportados.
const (
	FormatoTexto = "texto"
	FormatoJSON  = "json"
	FormatoCSV   = "csv"
	FormatoPDF   = "pdf"
)

// RenderJSON serializa cualquier reporte con indentación. Los decimales salen
// como strings para no perder precisión.
func RenderJSON(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("reporte json: %w", err)
	}
	return out, nil
}

// ── Texto ─────────────────────────────────────────────────────────────────────

// MensualTexto balance mensual en texto plano alineado.
func MensualTexto(b *dto.BalanceMensualDTO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "BALANCE %s %d\n", strings.ToUpper(b.Periodo.MesNombre), b.Periodo.Anio)
	sb.WriteString(strings.Repeat("=", 46) + "\n\n")

	sb.WriteString("INGRESOS\n")
	linea(&sb, "Ventas brutas (IVA incl.)", b.Ingresos.TotalBruto)
	linea(&sb, "Ventas netas", b.Ingresos.TotalNeto)
	linea(&sb, "IVA débito", b.Ingresos.IVA)
	fmt.Fprintf(&sb, "  %-28s %14s kg\n", "Kilos vendidos", b.Ingresos.KilosVendidos)
	fmt.Fprintf(&sb, "  %-28s %14d\n", "N° ventas", b.Ingresos.NumVentas)
	linea(&sb, "Ticket promedio", b.Ingresos.TicketPromedio)
	for _, canal := range entity.Canales {
		linea(&sb, "  canal "+canal, b.Ingresos.PorCanal[canal])
	}

	sb.WriteString("\nCOSTOS\n")
	linea(&sb, "Costo promedio por kg", b.Costos.CostoPromedioKg)
	linea(&sb, "CMV", b.Costos.CMV)

	sb.WriteString("\nGASTOS\n")
	for _, tipo := range entity.TiposGasto {
		g := b.Gastos.PorTipo[tipo]
		fmt.Fprintf(&sb, "  %-28s %14s (IVA %s, %d reg.)\n", tipo, g.Neto, g.IVA, g.Cantidad)
	}
	linea(&sb, "Total neto", b.Gastos.TotalNeto)
	linea(&sb, "Total IVA", b.Gastos.TotalIVA)
	linea(&sb, "Total", b.Gastos.Total)

	sb.WriteString("\nRESULTADO\n")
	resultado(&sb, "Utilidad bruta", b.UtilidadBruta, b.MargenBrutoPct)
	resultado(&sb, "Utilidad operacional", b.UtilidadOperacional, b.MargenOperacionalPct)
	resultado(&sb, "Utilidad neta", b.UtilidadNeta, b.MargenNetoPct)
	return sb.String()
}

// AnualTexto balance anual en texto plano: tabla mensual más los totales.
func AnualTexto(b *dto.BalanceAnualDTO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "BALANCE ANUAL %d\n", b.Anio)
	sb.WriteString(strings.Repeat("=", 78) + "\n\n")

	fmt.Fprintf(&sb, "%-12s %14s %14s %14s %14s\n", "Mes", "Ingresos", "CMV", "Gastos", "Utilidad")
	for _, m := range b.Meses {
		fmt.Fprintf(&sb, "%-12s %14s %14s %14s %14s\n",
			m.Periodo.MesNombre, m.Ingresos.TotalBruto, m.Costos.CMV, m.Gastos.Total, m.UtilidadNeta)
	}
	fmt.Fprintf(&sb, "%-12s %14s %14s %14s %14s\n",
		"TOTAL", b.Totales.IngresosBruto, b.Totales.CMV, b.Totales.Gastos, b.Totales.UtilidadNeta)

	sb.WriteString("\n")
	resultado(&sb, "Margen bruto", b.Totales.UtilidadBruta, b.Totales.MargenBrutoPct)
	resultado(&sb, "Margen operacional", b.Totales.UtilidadOperacional, b.Totales.MargenOperacionalPct)
	resultado(&sb, "Margen neto", b.Totales.UtilidadNeta, b.Totales.MargenNetoPct)

	sb.WriteString("\nPROMEDIOS MENSUALES\n")
	linea(&sb, "Ingresos", b.Promedios.IngresosMensual)
	linea(&sb, "Gastos", b.Promedios.GastosMensual)
	linea(&sb, "Utilidad", b.Promedios.UtilidadMensual)
	linea(&sb, "Ticket promedio", b.Promedios.TicketPromedio)
	fmt.Fprintf(&sb, "  %-28s %14d\n", "Ventas por mes", b.Promedios.VentasMensuales)
	return sb.String()
}

// ComparativaTexto comparación de años en texto plano.
func ComparativaTexto(c *dto.ComparativaDTO) string {
	var sb strings.Builder
	sb.WriteString("COMPARATIVA ANUAL\n")
	sb.WriteString(strings.Repeat("=", 62) + "\n\n")

	fmt.Fprintf(&sb, "%-6s %16s %16s %16s\n", "Año", "Ingresos", "Utilidad neta", "Margen neto %")
	for _, a := range c.Anios {
		fmt.Fprintf(&sb, "%-6d %16s %16s %16s\n",
			a.Anio, a.Totales.IngresosBruto, a.Totales.UtilidadNeta, a.Totales.MargenNetoPct)
	}

	if len(c.Comparativa) > 0 {
		sb.WriteString("\nCRECIMIENTO\n")
		for _, crec := range c.Comparativa {
			fmt.Fprintf(&sb, "  %-10s ingresos %8s%%   utilidad %8s%%\n",
				crec.Periodo, crec.CrecimientoIngresosPct, crec.CrecimientoUtilidadPct)
		}
	}
	return sb.String()
}

func linea(sb *strings.Builder, etiqueta string, valor decimal.Decimal) {
	fmt.Fprintf(sb, "  %-28s %14s\n", etiqueta, valor)
}

func resultado(sb *strings.Builder, etiqueta string, valor, margen decimal.Decimal) {
	fmt.Fprintf(sb, "  %-28s %14s  (%s%%)\n", etiqueta, valor, margen)
}

// ── CSV ───────────────────────────────────────────────────────────────────────

// MensualCSV balance mensual como pares campo,valor. Los decimales van como
// números planos, sin comillas de precisión.
func MensualCSV(b *dto.BalanceMensualDTO) ([]byte, error) {
	registros := [][]string{
		{"campo", "valor"},
		{"anio", fmt.Sprint(b.Periodo.Anio)},
		{"mes", fmt.Sprint(b.Periodo.Mes)},
		{"ingresos_bruto", b.Ingresos.TotalBruto.String()},
		{"ingresos_neto", b.Ingresos.TotalNeto.String()},
		{"iva", b.Ingresos.IVA.String()},
		{"kilos_vendidos", b.Ingresos.KilosVendidos.String()},
		{"num_ventas", fmt.Sprint(b.Ingresos.NumVentas)},
		{"ticket_promedio", b.Ingresos.TicketPromedio.String()},
		{"costo_promedio_kg", b.Costos.CostoPromedioKg.String()},
		{"cmv", b.Costos.CMV.String()},
		{"gastos_neto", b.Gastos.TotalNeto.String()},
		{"gastos_iva", b.Gastos.TotalIVA.String()},
		{"gastos_total", b.Gastos.Total.String()},
		{"utilidad_bruta", b.UtilidadBruta.String()},
		{"utilidad_operacional", b.UtilidadOperacional.String()},
		{"utilidad_neta", b.UtilidadNeta.String()},
		{"margen_bruto_pct", b.MargenBrutoPct.String()},
		{"margen_operacional_pct", b.MargenOperacionalPct.String()},
		{"margen_neto_pct", b.MargenNetoPct.String()},
	}
	return escribirCSV(registros)
}

// AnualCSV balance anual como una fila por mes, más la fila total.
func AnualCSV(b *dto.BalanceAnualDTO) ([]byte, error) {
	registros := [][]string{
		{"mes", "ingresos_bruto", "ingresos_neto", "cmv", "gastos", "utilidad_bruta", "utilidad_operacional", "utilidad_neta"},
	}
	for _, m := range b.Meses {
		registros = append(registros, []string{
			fmt.Sprintf("%d-%02d", m.Periodo.Anio, m.Periodo.Mes),
			m.Ingresos.TotalBruto.String(),
			m.Ingresos.TotalNeto.String(),
			m.Costos.CMV.String(),
			m.Gastos.Total.String(),
			m.UtilidadBruta.String(),
			m.UtilidadOperacional.String(),
			m.UtilidadNeta.String(),
		})
	}
	registros = append(registros, []string{
		"total",
		b.Totales.IngresosBruto.String(),
		b.Totales.IngresosNeto.String(),
		b.Totales.CMV.String(),
		b.Totales.Gastos.String(),
		b.Totales.UtilidadBruta.String(),
		b.Totales.UtilidadOperacional.String(),
		b.Totales.UtilidadNeta.String(),
	})
	return escribirCSV(registros)
}

// ComparativaCSV una fila por año más las filas de crecimiento.
func ComparativaCSV(c *dto.ComparativaDTO) ([]byte, error) {
	registros := [][]string{
		{"anio", "ingresos_bruto", "utilidad_neta", "margen_neto_pct"},
	}
	for _, a := range c.Anios {
		registros = append(registros, []string{
			fmt.Sprint(a.Anio),
			a.Totales.IngresosBruto.String(),
			a.Totales.UtilidadNeta.String(),
			a.Totales.MargenNetoPct.String(),
		})
	}
	for _, crec := range c.Comparativa {
		registros = append(registros, []string{
			"crecimiento " + crec.Periodo,
			crec.CrecimientoIngresosPct.String(),
			crec.CrecimientoUtilidadPct.String(),
			"",
		})
	}
	return escribirCSV(registros)
}

func escribirCSV(registros [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(registros); err != nil {
		return nil, fmt.Errorf("reporte csv: %w", err)
	}
	return buf.Bytes(), nil
}
