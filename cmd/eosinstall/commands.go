package main

import (
	"fmt"
	"os"
	"time"

	"github.com/AvengeMedia/eosinstall/internal/errdefs"
	"github.com/AvengeMedia/eosinstall/internal/log"
	"github.com/AvengeMedia/eosinstall/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type runFlags struct {
	delay       time.Duration
	logFile     string
	debug       bool
	noAltScreen bool
}

var flags = runFlags{delay: tui.DefaultTickDelay}

var rootCmd = &cobra.Command{
	Use:           "eosinstall",
	Short:         "EndeavourOS installer",
	Long:          "EndeavourOS Installer\n\nWalks through the welcome, language selection and completion screens.\nPress Enter to advance and q to quit.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInstaller,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "EndeavourOS Installer v%s\n", Version)
}

func runInstaller(cmd *cobra.Command, args []string) error {
	if flags.delay < 0 {
		return errdefs.NewCustomError(errdefs.ErrTypeGeneric, fmt.Sprintf("--delay must not be negative, got %s", flags.delay))
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errdefs.ErrNotATerminal
	}

	closer, err := log.Configure(log.Options{File: flags.logFile, Debug: flags.debug})
	if err != nil {
		return errdefs.Wrap(errdefs.ErrTypeGeneric, "opening log file", err)
	}
	defer func() {
		closer.Close()
		log.Reset()
	}()

	var opts []tea.ProgramOption
	if !flags.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	model := tui.NewModel(Version, tui.WithTickDelay(flags.delay))
	final, err := tui.Run(model, opts...)
	if err != nil {
		return err
	}

	log.Debug("installer finished", "step", final.State().Step, "screen", final.State().Screen())
	return nil
}
