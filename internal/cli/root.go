package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"max.ks1230/fx-converter/internal/clients/frankfurter"
	"max.ks1230/fx-converter/internal/config"
	"max.ks1230/fx-converter/internal/locale"
	"max.ks1230/fx-converter/internal/logger"
	"max.ks1230/fx-converter/internal/model/converter"
	"max.ks1230/fx-converter/internal/ui/tui"
)

const debugLogFile = "fxconv.log"

type options struct {
	configPath string
	locale     string
	debug      bool
}

// env is what every subcommand needs once flags are parsed.
type env struct {
	conf    *config.Service
	service *converter.Service
	catalog locale.Catalog
}

// localizedError carries the text already rendered for the user.
type localizedError struct {
	text string
	err  error
}

func (e *localizedError) Error() string { return e.text }
func (e *localizedError) Unwrap() error { return e.err }

func (e *env) fail(err error) error {
	return &localizedError{text: e.catalog.Error(err), err: err}
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		var le *localizedError
		if errors.As(err, &le) {
			fmt.Fprintln(os.Stderr, le.text)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "fxconv",
		Short:         "Currency converter at live frankfurter.app rates",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			setupLogging(opts.debug, true)
			defer logger.Sync()

			e, err := opts.load()
			if err != nil {
				return err
			}

			app := e.conf.App()
			return tui.Run(c.Context(), tui.Deps{
				Converter: e.service,
				Catalog:   e.catalog,
				From:      app.DefaultFrom(),
				To:        app.DefaultTo(),
				Amount:    app.DefaultAmount(),
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultFile, "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.locale, "locale", "", "message language (en, ru)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging (to "+debugLogFile+" in the terminal view)")

	cmd.AddCommand(convertCmd(opts), currenciesCmd(opts))
	return cmd
}

func (o *options) load() (*env, error) {
	conf, err := config.New(o.configPath)
	if err != nil {
		return nil, errors.Wrap(err, "init config")
	}
	conf.App().SetLocale(o.locale)

	client, err := frankfurter.New(conf.Frankfurter())
	if err != nil {
		return nil, errors.Wrap(err, "init rates client")
	}

	catalog := locale.For(conf.App().Locale())
	logger.Debug("config loaded",
		zap.String("api", conf.Frankfurter().BaseURL()),
		zap.String("locale", catalog.Name()),
	)

	return &env{
		conf:    conf,
		service: converter.NewService(client),
		catalog: catalog,
	}, nil
}

// setupLogging keeps log lines off the user's output. An explicit LOG_FILE
// always wins.
func setupLogging(debug, screen bool) {
	switch {
	case os.Getenv("LOG_FILE") != "":
	case debug && screen:
		if err := logger.ToFile(debugLogFile); err != nil {
			logger.Discard()
		}
	case debug:
	default:
		logger.Discard()
	}
}
