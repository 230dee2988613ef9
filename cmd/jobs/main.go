// Command jobs ejecuta una tarea programada del CRM por invocación (pensado para cron):
//
//	*/5 * * * *  jobs heartbeat
//	0 6 * * 1    jobs report
//	0 8 * * *    jobs reminders
//	0 2 * * 0    jobs cleanup
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("cargar configuración: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg, log).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
