package cli

import (
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/astrolab/aspectra/internal/database"
	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/log"
	"github.com/astrolab/aspectra/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Serve chart datasets over HTTP",
	Long: `serve loads samples either from an export file argument or, with
--dsn, from the archive (bounded by --start and --end), then serves the
computed chart datasets until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("listen", "", "listen address (default from config, :8080)")
	serveCmd.Flags().Float64("orb", 0, "orb in degrees (default from config, 5.0)")
	serveCmd.Flags().String("dsn", "", "archive DSN (postgres:// URL or SQLite file path)")
	serveCmd.Flags().String("start", "", "archive range start, YYYY-MM-DD (with --dsn)")
	serveCmd.Flags().String("end", "", "archive range end, YYYY-MM-DD (with --dsn)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	table, err := loadTable(cmd, args)
	if err != nil {
		return err
	}

	listen, _ := cmd.Flags().GetString("listen")
	if listen == "" {
		listen = viper.GetString("listen")
	}
	orb, _ := cmd.Flags().GetFloat64("orb")
	if orb <= 0 {
		orb = viper.GetFloat64("orb")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	s := server.New(server.Config{ListenAddr: listen, Orb: orb}, table, log.GetSugaredLogger())
	err = s.Run(ctx, &wg)
	wg.Wait()
	return err
}

// loadTable resolves the sample source: a file argument wins, otherwise
// the archive is read back over the --start/--end range.
func loadTable(cmd *cobra.Command, args []string) (*ingest.Table, error) {
	if len(args) == 1 {
		return ingest.ParseFile(args[0])
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		return nil, fmt.Errorf("either a file argument or --dsn is required")
	}

	start, err := flagDate(cmd, "start")
	if err != nil {
		return nil, err
	}
	end, err := flagDate(cmd, "end")
	if err != nil {
		return nil, err
	}

	arch, err := database.Open(dsn)
	if err != nil {
		return nil, err
	}
	defer arch.Close()

	log.Infof("reading archive %s from %s to %s",
		dsn, start.Format("2006-01-02"), end.Format("2006-01-02"))
	return arch.FetchRange(cmd.Context(), start, end)
}

func flagDate(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("--%s is required with --dsn", name)
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --%s: %w", name, err)
	}
	return t, nil
}
