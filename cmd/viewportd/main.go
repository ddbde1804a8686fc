package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	cmdutil "github.com/leg100/viewport/cmd"
	"github.com/leg100/viewport/internal"
	"github.com/leg100/viewport/internal/contact"
	"github.com/leg100/viewport/internal/http"
	"github.com/leg100/viewport/internal/logr"
	"github.com/leg100/viewport/internal/navigator"
	"github.com/leg100/viewport/internal/session"
	"github.com/leg100/viewport/internal/ui"
)

const (
	DefaultAddress = ":8080"
)

type config struct {
	address          string
	contactsFile     string
	generateContacts int
	denyViews        []string
	sessionTTL       time.Duration
}

func main() {
	// Configure ^C to terminate program
	ctx, cancel := cmdutil.CatchCtrlC(context.Background())
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		cmdutil.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cmd := &cobra.Command{
		Use:           "viewportd",
		Short:         "viewport daemon",
		Long:          "viewportd serves the contacts web UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Define run func in order to enable cobra's default help functionality
		Run: func(cmd *cobra.Command, args []string) {},
	}
	cmd.SetOut(out)

	var (
		help, version bool
		cfg           config
	)

	cmd.Flags().BoolVar(&version, "version", false, "Print version of viewportd")
	cmd.Flags().BoolVarP(&help, "help", "h", false, "Print usage information")
	cmd.Flags().StringVar(&cfg.contactsFile, "contacts-file", "", "Path to a YAML file of contacts to load at startup")
	cmd.Flags().IntVar(&cfg.generateContacts, "generate-contacts", 0, "Number of made-up contacts to add at startup")
	cmd.Flags().StringSliceVar(&cfg.denyViews, "deny-views", nil, "Glob patterns of view names that may not be navigated to")
	cmd.Flags().DurationVar(&cfg.sessionTTL, "session-ttl", session.DefaultTTL, "Idle time after which a UI session is discarded")

	loggerCfg := logr.NewConfigFromFlags(cmd.Flags())
	serverCfg := newServerConfigFromFlags(cmd.Flags(), &cfg.address)

	if err := cmdutil.SetFlagsFromEnvVariables(cmd.Flags()); err != nil {
		return err
	}

	if err := cmd.ParseFlags(args); err != nil {
		return err
	}

	if help {
		return cmd.Help()
	}

	if version {
		fmt.Fprintln(cmd.OutOrStdout(), internal.Version)
		return nil
	}

	// Setup logger
	logger, err := logr.New(loggerCfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	contacts := contact.NewService(logger)
	if cfg.contactsFile != "" {
		seed, err := contact.LoadFile(cfg.contactsFile)
		if err != nil {
			return fmt.Errorf("loading contacts: %w", err)
		}
		if err := contacts.Import(seed); err != nil {
			return err
		}
	}
	if cfg.generateContacts > 0 {
		if err := contacts.Import(contact.Generate(cfg.generateContacts)); err != nil {
			return err
		}
	}

	newUI, err := ui.NewFactory(ui.Config{
		Logger:    logger.WithValues("component", "navigator"),
		Contacts:  contacts,
		Metrics:   navigator.NewMetrics(reg),
		DenyViews: cfg.denyViews,
	})
	if err != nil {
		return fmt.Errorf("invalid --deny-views: %w", err)
	}
	sessions := session.NewStore(logger, session.Options[*ui.UI]{
		TTL:        cfg.sessionTTL,
		New:        newUI,
		Destroy:    (*ui.UI).Destroy,
		Registerer: reg,
	})

	serverCfg.Gatherer = reg
	serverCfg.Handlers = append(serverCfg.Handlers, &ui.Handlers{
		Logger:   logger,
		Sessions: sessions,
		Contacts: contacts,
	})
	server, err := http.NewServer(logger, *serverCfg)
	if err != nil {
		return fmt.Errorf("setting up http server: %w", err)
	}
	ln, err := net.Listen("tcp", cfg.address)
	if err != nil {
		return err
	}

	// Group several daemons and if any one of them errors then terminate them
	// all
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sessions.Start(ctx, session.DefaultCleanupInterval)
	})

	g.Go(func() error {
		if err := server.Start(ctx, ln); err != nil {
			return fmt.Errorf("web server terminated: %w", err)
		}
		return nil
	})

	// Block until error or Ctrl-C received.
	return g.Wait()
}

// newServerConfigFromFlags adds flags pertaining to http server config
func newServerConfigFromFlags(flags *pflag.FlagSet, address *string) *http.ServerConfig {
	cfg := http.ServerConfig{}

	flags.StringVar(address, "address", DefaultAddress, "Listening address")
	flags.BoolVar(&cfg.SSL, "ssl", false, "Toggle SSL")
	flags.StringVar(&cfg.CertFile, "cert-file", "", "Path to SSL certificate (required if enabling SSL)")
	flags.StringVar(&cfg.KeyFile, "key-file", "", "Path to SSL key (required if enabling SSL)")
	flags.BoolVar(&cfg.EnableRequestLogging, "log-http-requests", false, "Log HTTP requests")

	return &cfg
}
