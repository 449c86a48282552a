package cmd

import (
	"fmt"

	"match-canon/core/database"
	"match-canon/feature/players"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateFlag bool

// playersCmd is the parent command for the player alias store.
var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Manage the player nickname aliases",
}

// playersImportCmd loads a players JSON file into the alias database.
var playersImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a players file into the alias database",
	Long: `Reads a JSON array of {"nickname", "name"} entries and upserts them into
player_aliases. An existing nickname gets the new name.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlayersImport,
}

// playersVerifyCmd checks the alias table against the expected schema.
var playersVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the player_aliases schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		if err := players.VerifySchema(db); err != nil {
			return err
		}
		logg.Info("Player alias schema is valid", zap.String("driver", cfg.Database.Driver))
		return nil
	},
}

func init() {
	playersImportCmd.Flags().BoolVar(&migrateFlag, "migrate", true, "Create or update the player_aliases table first")

	playersCmd.AddCommand(playersImportCmd, playersVerifyCmd)
	RootCmd.AddCommand(playersCmd)
}

func runPlayersImport(cmd *cobra.Command, args []string) error {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return err
	}

	entries, err := players.LoadFile(args[0])
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}
	if migrateFlag {
		if err := players.Migrate(db); err != nil {
			return err
		}
	}

	n, err := players.Import(cmd.Context(), db, entries)
	if err != nil {
		return err
	}
	logg.Info("Players imported", zap.Int("count", n), zap.String("file", args[0]))
	return nil
}
