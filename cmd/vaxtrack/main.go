package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"text/tabwriter"
	"time"

	pg "vaccine-tracker/internal/adapters/storage/postgres"
	"vaccine-tracker/internal/domain/doses"
	"vaccine-tracker/internal/domain/schedule"
	"vaccine-tracker/internal/platform/calendar"
	"vaccine-tracker/internal/router"

	"github.com/spf13/cobra"
)

// @title vaxtrack API
// @version 1.0
// @description Calendario de vacunación, adherencia y reminders por sujeto.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:           "vaxtrack",
		Short:         "Vaccination schedule, compliance and reminders service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(scheduleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API, the reminder scheduler and the periodic sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(router.Options{Service: a.svc}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := a.svc.RunScheduler(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("reminder scheduler stopped", map[string]any{"error": err})
		}
	}()
	go func() {
		defer wg.Done()
		if err := a.svc.RunSweeper(ctx, cfg.SweepInterval); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("sweeper stopped", map[string]any{"error": err})
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			stop()
			wg.Wait()
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", map[string]any{"error": err})
	}

	stop()
	wg.Wait()
	a.svc.Wait()
	log.Info("server stopped", nil)
	return nil
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one sweep pass over every dose record and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.svc.Sweep(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sweep: %d dose(s) marked missed\n", n)
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the PostgreSQL schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.UsesPostgres() {
				return errors.New("DATABASE_URL is required for migrate")
			}

			db, err := pg.Open(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("open postgres: %w", err)
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("schema up to date", nil)
			return nil
		},
	}
}

func scheduleCmd() *cobra.Command {
	var (
		birth        string
		templateFile string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the vaccination schedule for a birth date without persisting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := calendar.ParseDate(birth)
			if err != nil {
				return fmt.Errorf("--birth must be YYYY-MM-DD: %w", err)
			}
			tpl, err := loadTemplate(templateFile)
			if err != nil {
				return err
			}

			recs := schedule.Generate(tpl, b, "preview", time.Now())
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(recs)
			}
			return printSchedule(cmd.OutOrStdout(), recs)
		},
	}

	cmd.Flags().StringVar(&birth, "birth", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&templateFile, "template", "", "YAML schedule template (default: built-in)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("birth")

	return cmd
}

func printSchedule(w io.Writer, recs []doses.DoseRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tDOSE\tCATEGORY\tDUE\tSTATUS")
	for _, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Seq, r.DoseName, r.Category, r.DueDate.Format(time.DateOnly), r.Status)
	}
	return tw.Flush()
}
