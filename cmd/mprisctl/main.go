package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mprisctl/mprisctl/internal/adapters/clock"
	"github.com/mprisctl/mprisctl/internal/adapters/config"
	"github.com/mprisctl/mprisctl/internal/adapters/dbusconn"
	"github.com/mprisctl/mprisctl/internal/adapters/output"
	"github.com/mprisctl/mprisctl/internal/core"
	"github.com/mprisctl/mprisctl/internal/ports"
)

type app struct {
	bus      ports.Bus
	resolver core.Resolver
	printer  output.Printer
	session  *core.Session
	closer   func() error
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := newRoot().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if ctx.Err() != nil {
		return core.ExitInterrupt
	}
	return core.ExitCode(err)
}

func newRoot() *cobra.Command {
	var (
		playerOpt string
		address   string
		jsonOut   bool
		verbose   bool
		noColor   bool
	)

	app := &app{}

	root := &cobra.Command{
		Use:           "mprisctl",
		Short:         "Remote control for MPRIS media players",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// A bare invocation shows the verbose status report.
			return app.dispatch(cmd.Context(), "status", nil)
		},
	}

	root.PersistentFlags().StringVarP(&playerOpt, "player", "p", "", "player identifier, or '*' for the first found")
	root.PersistentFlags().StringVar(&address, "address", "", "session bus address override")
	root.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output json")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if playerOpt == "" {
			playerOpt = os.Getenv("MPRISCTL_PLAYER")
		}
		if playerOpt == "" {
			playerOpt = cfg.Player
		}
		if address == "" {
			address = cfg.Address
		}
		if noColor {
			pterm.DisableColor()
		}

		logger := zap.NewNop()
		if verbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
		}

		bus, err := dbusconn.Connect(dbusconn.Options{Address: address, Logger: logger})
		if err != nil {
			return core.WrapError(core.ExitRemote, "connect to session bus", err)
		}

		app.bus = bus
		app.closer = bus.Close
		app.resolver = core.Resolver{
			Bus:    bus,
			Clock:  clock.Clock{},
			Config: core.Config{Player: playerOpt, Aliases: cfg.Aliases},
		}
		if jsonOut {
			app.printer = output.JSONPrinter{}
		} else {
			app.printer = output.HumanPrinter{}
		}
		return nil
	}

	root.PersistentPostRunE = func(*cobra.Command, []string) error {
		if app.closer != nil {
			return app.closer()
		}
		return nil
	}

	for _, desc := range core.Commands() {
		root.AddCommand(commandFor(app, desc))
	}
	root.AddCommand(playersCommand(app))

	return root
}

func commandFor(app *app, desc core.Descriptor) *cobra.Command {
	return &cobra.Command{
		Use:   desc.Use,
		Short: desc.Short,
		// Arity is the descriptor table's concern, so usage errors carry
		// the validator's live description.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.dispatch(cmd.Context(), desc.Name, args)
		},
	}
}

func (a *app) dispatch(ctx context.Context, name string, args []string) error {
	if a.session == nil {
		session, err := a.resolver.Resolve(ctx, "")
		if err != nil {
			return err
		}
		a.session = session
	}
	stream, err := core.Dispatch(ctx, a.session, name, args, os.Stdin)
	if err != nil {
		return err
	}
	return stream.Drain(func(chunk string) error {
		return a.printer.Print(core.Chunk(chunk))
	})
}
