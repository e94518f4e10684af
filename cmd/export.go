package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-manager.com/task-manager/internal/configs"
	"task-manager.com/task-manager/internal/export"
	"task-manager.com/task-manager/internal/services"
)

var exportFormat string

// exportCmd renders the current task list to a file without starting
// the server.
var exportCmd = &cobra.Command{
	Use:   "export [output file]",
	Short: "Export the task list to a spreadsheet or PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logger := config.NewLogger(cfg.Env)

		st, err := newStore(cfg, logger)
		if err != nil {
			return err
		}

		manager := services.NewManagerService(st, logger)
		if err := manager.Load(context.Background()); err != nil {
			return err
		}

		tasks := manager.Snapshot().Tasks
		writer := export.NewWriter()

		path := args[0]
		switch exportFormat {
		case "excel":
			err = writer.WriteExcel(tasks, path)
		case "pdf":
			err = writer.WritePDF(tasks, path)
		default:
			return fmt.Errorf("unknown format %q, want excel or pdf", exportFormat)
		}
		if err != nil {
			return err
		}

		logger.Info().Str("path", path).Str("format", exportFormat).Msg("export finished")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "excel", "output format: excel or pdf")
	rootCmd.AddCommand(exportCmd)
}
