// Package worker contiene los trabajos programados de la aplicación.
package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
	"github.com/jorge052011/crm-distribuidora/pkg/logger"
)

// ReordenWorker revisa a diario la proyección de stock y deja un log de
// advertencia cuando los días de stock caen bajo el lead de importación.
// El aviso por correo queda para cuando haya proveedor SMTP definido.
type ReordenWorker struct {
	inventario *usecase.InventarioUseCase
	log        *logger.Logger
	cron       *cron.Cron
}

func NewReordenWorker(inventario *usecase.InventarioUseCase, log *logger.Logger) *ReordenWorker {
	return &ReordenWorker{
		inventario: inventario,
		log:        log,
		cron:       cron.New(),
	}
}

// Start programa la revisión con el spec cron dado (ej: "0 8 * * *" para las
// 08:00 de cada día) y arranca el scheduler en su propia goroutine.
func (w *ReordenWorker) Start(spec string) error {
	if _, err := w.cron.AddFunc(spec, w.Revisar); err != nil {
		return err
	}
	w.cron.Start()
	w.log.Info().Str("spec", spec).Msg("worker de reorden programado")
	return nil
}

// Stop detiene el scheduler y espera a que termine el trabajo en curso.
func (w *ReordenWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

// Revisar ejecuta una pasada de la proyección. Exportado para poder gatillarlo
// a mano al arrancar o desde tests.
func (w *ReordenWorker) Revisar() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, err := w.inventario.ProyeccionStock(ctx, 0)
	if err != nil {
		w.log.Error().Err(err).Msg("proyección de stock del worker de reorden")
		return
	}

	evento := w.log.Info()
	if p.AlertaReorden {
		evento = w.log.Warn()
	}
	evento = evento.
		Str("stock_kg", p.StockKg.String()).
		Str("consumo_diario", p.ConsumoDiario.String()).
		Bool("alerta_reorden", p.AlertaReorden)
	if p.DiasStock != nil {
		evento = evento.Str("dias_stock", p.DiasStock.String())
	}
	if p.FechaOrdenSugerida != nil {
		evento = evento.Str("fecha_orden_sugerida", *p.FechaOrdenSugerida)
	}
	evento.Msg("proyección de stock")
}
