package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeodor/plasm/internal/core/logger"
	"github.com/codeodor/plasm/internal/database"
	"github.com/codeodor/plasm/internal/database/migration"
	"github.com/codeodor/plasm/internal/pets"
	"github.com/codeodor/plasm/internal/repository"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run migrations manually.",
	Long:  `Command that exists and should be used only for development purposes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbURL := os.Getenv("DATABASE_URL")
		migrationDir, _ := cmd.Flags().GetString("dir")

		err := migration.Migrate(
			dbURL,
			fmt.Sprintf("file://%s", migrationDir),
			true,
			logger.NewLogger(),
		)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample pet catalog.",
	RunE: func(_ *cobra.Command, _ []string) error {
		db, err := database.NewPostgresConnection(os.Getenv("DATABASE_URL"))
		if err != nil {
			return err
		}
		defer db.Close()

		repo := pets.NewPetRepository(repository.NewRepository(db, database.DialectPostgres))
		if err := repo.Seed(pets.DemoPets()); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}

		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "plasmd",
		Short: "Pet catalog service demonstrating the plasm query helpers",
	}
	MigrateCmd.Flags().String("dir", "./migrations", "Directory containing the migration files")
	rootCmd.AddCommand(MigrateCmd)
	rootCmd.AddCommand(SeedCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
