package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/crm-api/internal/application/jobs"
	"github.com/jhoicas/crm-api/internal/infrastructure/applog"
	"github.com/jhoicas/crm-api/internal/infrastructure/graphqlclient"
	"github.com/jhoicas/crm-api/internal/infrastructure/storage"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func newRootCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jobs",
		Short:        "Tareas programadas del CRM",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		heartbeatCmd(cfg, log),
		reportCmd(cfg, log),
		remindersCmd(cfg, log),
		cleanupCmd(cfg, log),
	)
	return cmd
}

func newClient(cfg *config.Config) *graphqlclient.Client {
	return graphqlclient.New(graphqlclient.Config{
		URL:       cfg.Jobs.GraphQLURL,
		Timeout:   cfg.Jobs.HTTPTimeout,
		JWTSecret: cfg.JWT.Secret,
		Issuer:    cfg.JWT.Issuer,
	})
}

// jobLog logger de ejecución con la bitácora destino.
func jobLog(log *logger.Logger, sink *applog.File) zerolog.Logger {
	return log.Component("jobs").With().Str("log_file", sink.Path()).Logger()
}

func heartbeatCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var logFile string
	c := &cobra.Command{
		Use:   "heartbeat",
		Short: "Registra que el CRM está vivo y si /graphql responde",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sink := applog.Open(logFile)
			job := jobs.NewHeartbeat(newClient(cfg), sink, nil)
			return jobs.Execute(cmd.Context(), jobLog(log, sink), job)
		},
	}
	c.Flags().StringVar(&logFile, "log-file", cfg.Jobs.HeartbeatLog, "Archivo de bitácora")
	return c
}

func reportCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var logFile string
	c := &cobra.Command{
		Use:   "report",
		Short: "Registra totales de clientes, pedidos e ingresos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sink := applog.Open(logFile)
			job := jobs.NewReport(newClient(cfg), sink, nil)
			return jobs.Execute(cmd.Context(), jobLog(log, sink), job)
		},
	}
	c.Flags().StringVar(&logFile, "log-file", cfg.Jobs.ReportLog, "Archivo de bitácora")
	return c
}

func remindersCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var logFile string
	c := &cobra.Command{
		Use:   "reminders",
		Short: "Registra recordatorios de los pedidos de los últimos 7 días",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sink := applog.Open(logFile)
			job := jobs.NewReminders(newClient(cfg), sink, nil, log.Component("reminders"))
			return jobs.Execute(cmd.Context(), jobLog(log, sink), job)
		},
	}
	c.Flags().StringVar(&logFile, "log-file", cfg.Jobs.RemindersLog, "Archivo de bitácora")
	return c
}

func cleanupCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var logFile string
	var referenceDate string
	c := &cobra.Command{
		Use:   "cleanup",
		Short: "Borra clientes sin pedidos en el último año",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := jobs.ParseReferenceDate(referenceDate)
			if err != nil {
				return err
			}
			if cfg.Store.Driver == config.StoreDriverMemory {
				log.Warn().Msg("STORE_DRIVER=memory: la limpieza corre sobre un almacenamiento vacío de este proceso")
			}
			backend, err := storage.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			sink := applog.Open(logFile)
			job := jobs.NewCleanup(backend.Customers, sink, ref)
			return jobs.Execute(cmd.Context(), jobLog(log, sink), job)
		},
	}
	c.Flags().StringVar(&logFile, "log-file", cfg.Jobs.CleanupLog, "Archivo de bitácora")
	c.Flags().StringVar(&referenceDate, "reference-date", "", "Fecha de referencia YYYY-MM-DD (por defecto, hoy)")
	return c
}
