// File: cmd/service/main.go
// @title        Project Hub API
// @version      1.0
// @description  專案與任務管理 API，內含 AI 任務建議與進度分析
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "project-hub",
	Short:         "Project Hub API server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "執行 migration 並啟動 HTTP 服務",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "管理資料庫 schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "套用所有尚未執行的 migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrate(runMigrationsFn)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "退回所有 migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrate(rollbackFn)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func execute(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		slog.Error("project-hub exited", "error", err)
		exitFunc(1)
	}
}
