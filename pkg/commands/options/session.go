package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SessionOptions are the persistent flags every command shares.
type SessionOptions struct {
	Memory  bool
	LogFile string
	Verbose bool
}

func AddSessionArgs(cmd *cobra.Command, o *SessionOptions) {
	flags := cmd.PersistentFlags()
	flags.BoolVar(&o.Memory, "memory", false,
		"Keep tasks in memory only; nothing is read or saved.")
	flags.StringVar(&o.LogFile, "log-file", "",
		"Write logs to this file, rotated as it grows.")
	flags.BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug details.")

	_ = viper.BindPFlag("log.file", flags.Lookup("log-file"))
	_ = viper.BindPFlag("log.verbose", flags.Lookup("verbose"))
}
