// eggcatch is a falling-egg catching game for the terminal, SSH and the browser.
//
// Usage:
//
//	eggcatch play [mode]     - Play a round (classic or marathon)
//	eggcatch menu            - Pick a mode interactively
//	eggcatch list            - List game modes
//	eggcatch scores [mode]   - Show recorded rounds
//	eggcatch serve           - Start SSH server for remote play
//	eggcatch web             - Start the browser front end
//	eggcatch config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.eggcatch/scores.db)
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Write logs to a file
//
// EGGCATCH_DB, EGGCATCH_CONFIG and EGGCATCH_LOG may be set in the environment
// or in a .env file to change the defaults.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggcatch/internal/games/catch"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggcatch",
	Short: "Egg Catch - catch falling eggs in your terminal",
	Long: `Egg Catch drops colored eggs down the screen. Move the basket to catch
the good ones before the clock runs out. Some colors cost points, and red
or magenta eggs end the round on the spot.

Available commands:
  play     - Play a round directly
  menu     - Interactive mode picker
  list     - Show game modes
  scores   - View recorded rounds
  serve    - Start SSH server for remote play
  web      - Start the browser front end
  config   - Print the effective configuration

Examples:
  eggcatch play
  eggcatch play marathon
  eggcatch menu
  eggcatch serve --ssh :2222
  eggcatch web --addr :8080`,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = closeLog()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.eggcatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, applies environment defaults to flags the user did not
// set, and configures the game package.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	flags := cmd.Flags()
	envDefault := func(name, env string, dst *string) {
		if v := os.Getenv(env); v != "" && !flags.Changed(name) {
			*dst = v
		}
	}
	envDefault("db", "EGGCATCH_DB", &flagDBPath)
	envDefault("config", "EGGCATCH_CONFIG", &flagConfigPath)
	envDefault("log", "EGGCATCH_LOG", &flagLogPath)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closeFn, err := newLogger(cmd.Name(), flagLogPath, flagDebug)
	if err != nil {
		return err
	}
	appLogger = logger
	closeLog = closeFn

	catch.SetConfigPath(flagConfigPath)
	catch.SetLogger(logger)
	return nil
}
