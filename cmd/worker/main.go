// Command worker runs a single worker node: it loads its configuration,
// opens its structured logger, constructs a ledger.Engine over its node
// data directory, and serves the pipe-delimited EXECUTE/RESULT protocol
// over TCP until interrupted.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JECT-02/torua-ledger/internal/config"
	"github.com/JECT-02/torua-ledger/internal/ledger"
	"github.com/JECT-02/torua-ledger/internal/obslog"
	"github.com/JECT-02/torua-ledger/internal/server"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "worker: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := obslog.New(cfg.NodeID, cfg.LogLevel, cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "worker: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	engine, err := ledger.NewEngine(cfg.DataDir, cfg.NodeID, cfg.Partitions, cfg.Replication)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to construct ledger engine")
	}
	engine.Logger = logger

	srv := server.New(cfg.Addr(), engine, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	case <-stop:
		logger.Info().Msg("received shutdown signal")
		srv.Shutdown()
		<-errCh
	}

	stats := engine.Stats()
	logger.Info().
		Uint64("consultar_cuenta", stats.ConsultarCuenta).
		Uint64("transferir_cuenta", stats.TransferirCuenta).
		Uint64("debit", stats.Debit).
		Uint64("credit", stats.Credit).
		Uint64("pagar_deuda", stats.PagarDeuda).
		Uint64("consultar_historial", stats.ConsultarHistorial).
		Uint64("estado_pago_prestamo", stats.EstadoPagoPrestamo).
		Uint64("arqueo_cuentas", stats.ArqueoCuentas).
		Uint64("rejections", stats.Rejections).
		Uint64("errors", stats.Errors).
		Msg("worker stopped")
}
