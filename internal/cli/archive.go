package cli

import (
	"github.com/spf13/cobra"

	"github.com/astrolab/aspectra/internal/database"
	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/log"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <file>",
	Short: "Store an export file's samples in the archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchive,
}

func init() {
	archiveCmd.Flags().String("dsn", "", "archive DSN (postgres:// URL or SQLite file path)")
	archiveCmd.MarkFlagRequired("dsn")
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	table, err := ingest.ParseFile(args[0])
	if err != nil {
		return err
	}

	var samples []ingest.Sample
	for _, name := range table.Names() {
		ss, err := table.Series(name)
		if err != nil {
			return err
		}
		samples = append(samples, ss...)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	arch, err := database.Open(dsn)
	if err != nil {
		return err
	}
	defer arch.Close()

	if err := arch.StoreSamples(cmd.Context(), samples); err != nil {
		return err
	}
	log.Infof("archived %d samples across %d bodies", len(samples), len(table.Names()))
	return nil
}
