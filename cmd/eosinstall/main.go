package main

import (
	"os"

	"github.com/AvengeMedia/eosinstall/internal/log"
)

var Version = "dev"

func init() {
	rootCmd.Flags().DurationVar(&flags.delay, "delay", flags.delay, "Pause after each processed key event")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file while the UI is running")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "Log every tick at debug level")
	rootCmd.Flags().BoolVar(&flags.noAltScreen, "no-alt-screen", false, "Draw inline instead of on the alternate screen")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("Error: " + err.Error())
		os.Exit(1)
	}
}
