package cmd

import (
	"os"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/store"
	"github.com/spf13/cobra"
)

var (
	dataPath string
	logLevel string
	pretty   bool
)

var log = &logging.Log

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Pitch, chord, interval and fretboard calculations",
	Long: `fretdex converts between note names, midi note numbers and frequencies,
builds chords and scales from formulas, inverts chords, names intervals and
lays chords and scales out on a fretboard.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(os.Stderr, logLevel, pretty)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataPath, "data", constants.GetDataPath(), "store JSON file (built-in tables when empty)")
	flags.StringVar(&logLevel, "log-level", constants.GetLogLevel(), "trace, debug, info, warn or error")
	flags.BoolVar(&pretty, "pretty", false, "human readable logs")
}

func loadStore() (*store.Store, error) {
	st, err := store.Open(dataPath)
	if err != nil {
		log.Error().Err(err).Str("path", dataPath).Msg("could not load store")
		return nil, err
	}
	return st, nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
