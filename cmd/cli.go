package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"supplychain/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrCorruptRecords is returned by the audit command when any store holds a record
// that no longer decodes.
var ErrCorruptRecords = errors.New("corrupt records found")

// ValidFormats defines the allowed audit output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	EnvFile    string
}

// flagKeys binds command-line flags to config keys.
var flagKeys = map[string]string{
	"http-port":      "HTTP_PORT",
	"storage-driver": "STORAGE_DRIVER",
	"sqlite-path":    "SQLITE_PATH",
	"audit-schedule": "AUDIT_SCHEDULE",
	"log-level":      "LOG_LEVEL",
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "supplychain",
		Short: "Supply chain entity store and shipment tracker",
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "YAML config file")
	flags.StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file, ignored when missing")
	flags.String("http-port", "", "HTTP listen port (HTTP_PORT)")
	flags.String("storage-driver", "", "sqlite, postgres or memory (STORAGE_DRIVER)")
	flags.String("sqlite-path", "", "sqlite database file (SQLITE_PATH)")
	flags.String("audit-schedule", "", "cron schedule of the store audit, empty disables (AUDIT_SCHEDULE)")
	flags.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewAuditCommand(opts))

	return cmd
}

// loadConfig reads every source and applies the flags the user set explicitly.
func loadConfig(opts *RootOptions, flags *pflag.FlagSet) (Config, error) {
	cfg, err := LoadConfig(LoadOptions{ConfigFile: opts.ConfigFile, EnvFile: opts.EnvFile})
	if err != nil {
		return Config{}, err
	}

	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := cfg.Set(key, f.Value.String()); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Serve the HTTP API and run scheduled jobs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(rootOpts, cmd.Flags())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, cmd.ErrOrStderr())
		},
	}
}

func runServe(ctx context.Context, cfg Config, logOut io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := NewLogger(logOut, level)

	root, err := NewCompositionRoot(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer root.Close()

	e, err := root.CreateRouter(ctx)
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server starting", "port", cfg.HTTPPort, "storage", cfg.StorageDriver)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func NewAuditCommand(rootOpts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect every entity store once",
		Long: `Inspect every entity store once and print its next id, live record count
and the ids of records that no longer decode. Exits non-zero when any record is corrupt.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(*cobra.Command, []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(rootOpts, cmd.Flags())
			if err != nil {
				return err
			}
			return runAudit(cmd.Context(), cfg, format, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (json|text)")
	return cmd
}

func runAudit(ctx context.Context, cfg Config, format string, out, logOut io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	root, err := NewCompositionRoot(ctx, cfg, NewLogger(logOut, level))
	if err != nil {
		return err
	}
	defer root.Close()

	reports, err := root.CreateInspectStoresQueryHandler().Handle(ctx, queries.NewInspectStoresQuery())
	if err != nil {
		return err
	}

	if err := writeReports(out, format, reports); err != nil {
		return err
	}

	for _, r := range reports {
		if !r.Healthy() {
			return ErrCorruptRecords
		}
	}
	return nil
}

func writeReports(w io.Writer, format string, reports []queries.InspectStoresQueryResponse) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tNEXT ID\tRECORDS\tCORRUPT")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%v\n", r.Entity, r.NextID.Uint64(), r.Records, r.Corrupt)
	}
	return tw.Flush()
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
