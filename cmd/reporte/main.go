// Generador de reportes de balance por línea de comandos.
//
// Ejemplos:
//
//	reporte --tipo mensual --anio 2025 --mes 7
//	reporte --tipo anual --anio 2025 --formato csv --archivo balance_2025.csv
//	reporte --tipo comparativo --anios 2023,2024,2025 --formato json
//	reporte --tipo mensual --anio 2025 --mes 7 --formato pdf --archivo julio.pdf
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jorge052011/crm-distribuidora/internal/application/reporte"
	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
	infrapdf "github.com/jorge052011/crm-distribuidora/internal/infrastructure/pdf"
	"github.com/jorge052011/crm-distribuidora/internal/infrastructure/postgres"
	"github.com/jorge052011/crm-distribuidora/pkg/config"
)

const (
	tipoMensual     = "mensual"
	tipoAnual       = "anual"
	tipoComparativo = "comparativo"
)

func main() {
	var (
		tipo    = flag.String("tipo", tipoMensual, "tipo de reporte: mensual, anual o comparativo")
		mes     = flag.Int("mes", 0, "mes del reporte mensual (1-12)")
		anio    = flag.Int("anio", 0, "año del reporte mensual o anual")
		anios   = flag.String("anios", "", "años del comparativo separados por coma, ej: 2023,2024")
		formato = flag.String("formato", reporte.FormatoTexto, "formato de salida: texto, json, csv o pdf")
		archivo = flag.String("archivo", "", "ruta del archivo de salida; vacío escribe a stdout")
	)
	flag.Parse()

	if err := run(*tipo, *mes, *anio, *anios, *formato, *archivo); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(tipo string, mes, anio int, aniosRaw, formato, archivo string) error {
	switch formato {
	case reporte.FormatoTexto, reporte.FormatoJSON, reporte.FormatoCSV, reporte.FormatoPDF:
	default:
		return fmt.Errorf("formato desconocido %q: use texto, json, csv o pdf", formato)
	}
	if formato == reporte.FormatoPDF && tipo != tipoMensual {
		return fmt.Errorf("el formato pdf solo está disponible para el reporte mensual")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	uc := usecase.NewBalanceUseCase(postgres.NewBalanceRepository(pool))

	var salida []byte
	switch tipo {
	case tipoMensual:
		salida, err = reporteMensual(ctx, uc, anio, mes, formato)
	case tipoAnual:
		salida, err = reporteAnual(ctx, uc, anio, formato)
	case tipoComparativo:
		salida, err = reporteComparativo(ctx, uc, aniosRaw, formato)
	default:
		return fmt.Errorf("tipo desconocido %q: use mensual, anual o comparativo", tipo)
	}
	if err != nil {
		return err
	}

	return escribir(salida, archivo)
}

func reporteMensual(ctx context.Context, uc *usecase.BalanceUseCase, anio, mes int, formato string) ([]byte, error) {
	anio, mes, err := resolverPeriodo(anio, mes, time.Now())
	if err != nil {
		return nil, err
	}
	b, err := uc.CalcularMensual(ctx, anio, mes)
	if err != nil {
		return nil, err
	}
	switch formato {
	case reporte.FormatoJSON:
		return reporte.RenderJSON(b)
	case reporte.FormatoCSV:
		return reporte.MensualCSV(b)
	case reporte.FormatoPDF:
		return infrapdf.NewBalancePDFGenerator().GenerateBalancePDF(b)
	default:
		return []byte(reporte.MensualTexto(b)), nil
	}
}

func reporteAnual(ctx context.Context, uc *usecase.BalanceUseCase, anio int, formato string) ([]byte, error) {
	if anio == 0 {
		anio = time.Now().Year()
	}
	b, err := uc.CalcularAnual(ctx, anio)
	if err != nil {
		return nil, err
	}
	switch formato {
	case reporte.FormatoJSON:
		return reporte.RenderJSON(b)
	case reporte.FormatoCSV:
		return reporte.AnualCSV(b)
	default:
		return []byte(reporte.AnualTexto(b)), nil
	}
}

func reporteComparativo(ctx context.Context, uc *usecase.BalanceUseCase, aniosRaw, formato string) ([]byte, error) {
	anios, err := resolverAnios(aniosRaw, time.Now())
	if err != nil {
		return nil, err
	}
	c, err := uc.CalcularComparativa(ctx, anios)
	if err != nil {
		return nil, err
	}
	switch formato {
	case reporte.FormatoJSON:
		return reporte.RenderJSON(c)
	case reporte.FormatoCSV:
		return reporte.ComparativaCSV(c)
	default:
		return []byte(reporte.ComparativaTexto(c)), nil
	}
}

// resolverPeriodo completa año y mes con la fecha actual cuando no vienen
// por bandera.
func resolverPeriodo(anio, mes int, ahora time.Time) (int, int, error) {
	if anio == 0 {
		anio = ahora.Year()
	}
	if mes == 0 {
		mes = int(ahora.Month())
	}
	if mes < 1 || mes > 12 {
		return 0, 0, fmt.Errorf("--mes debe estar entre 1 y 12")
	}
	return anio, mes, nil
}

// resolverAnios interpreta --anios; sin bandera compara los últimos tres años.
func resolverAnios(raw string, ahora time.Time) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		y := ahora.Year()
		return []int{y - 2, y - 1, y}, nil
	}
	partes := strings.Split(raw, ",")
	anios := make([]int, 0, len(partes))
	for _, p := range partes {
		a, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("año inválido en --anios: %q", p)
		}
		anios = append(anios, a)
	}
	return anios, nil
}

func escribir(salida []byte, archivo string) error {
	if archivo == "" {
		_, err := os.Stdout.Write(salida)
		return err
	}
	if err := os.WriteFile(archivo, salida, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", archivo, err)
	}
	fmt.Println("reporte escrito en", archivo)
	return nil
}
