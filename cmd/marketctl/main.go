package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"marketplace/internal/config"
	"marketplace/internal/repository"
	"marketplace/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marketctl",
	Short: "Operator tool for the marketplace backend",
	Long: `marketctl applies the database schema, bootstraps admin accounts and
reports on the database, using the same configuration as the server.`,
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load()

	rootCmd.AddCommand(migrateCmd(), createAdminCmd(), dbStatusCmd())
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withPool loads configuration, connects and hands the pool to fn
func withPool(ctx context.Context, fn func(cfg *config.Config, pool *pgxpool.Pool) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	config.ConfigureLogger(cfg.LogLevel, cfg.LogFormat)

	pool, err := config.ConnectDB(ctx, &cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(cfg, pool)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables if they don't exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(_ *config.Config, pool *pgxpool.Pool) error {
				return config.AutoMigrate(cmd.Context(), pool)
			})
		},
	}
}

func createAdminCmd() *cobra.Command {
	var name, username, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(cfg *config.Config, pool *pgxpool.Pool) error {
				admins := service.NewAdminService(repository.NewAdminRepository(pool), cfg.BcryptCost)
				admin, err := admins.Signup(cmd.Context(), name, username, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created admin %q (id %d)\n", admin.Username, admin.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&username, "username", "", "login username")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func dbStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db-status",
		Short: "List the tables available in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(_ *config.Config, pool *pgxpool.Pool) error {
				tables, err := repository.NewStatusRepository(pool).ListTables(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Database connection successful\ntables: %s\n", strings.Join(tables, ", "))
				return nil
			})
		},
	}
}
