package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/desbravaprovas/clubcore/internal/config"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	verbose bool
	timeout time.Duration
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "Maximum time a command may run")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(setRoleCmd)
	rootCmd.AddCommand(linkRegionalCmd)
	rootCmd.AddCommand(unlinkRegionalCmd)
	rootCmd.AddCommand(writeSchemaCmd)
	rootCmd.AddCommand(reconcileCmd)
}

var rootCmd = &cobra.Command{
	Use:   "clubctl",
	Short: "clubctl is the operator CLI for clubcore",
	Long: `clubctl migrates the database, manages accounts and global roles,
links regional supervisors to clubs and reconciles the Permify relationship mirror.
Configuration is read from the same environment variables as the API server.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env is what every command needs: configuration, a logger and the database.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	gormLevel := gormlogger.Warn
	if verbose {
		gormLevel = gormlogger.Info
	}
	db, err := repository.Open(ctx, cfg.DSN(), gormLevel)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, db: db}, nil
}

// withEnv runs fn under the --timeout deadline with a ready env.
func withEnv(fn func(ctx context.Context, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		e, err := setup(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, e, args)
	}
}
