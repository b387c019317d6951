package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"max.ks1230/fx-converter/internal/logger"
	"max.ks1230/fx-converter/internal/model/converter"
)

func currenciesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List supported currency codes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			setupLogging(opts.debug, false)
			defer logger.Sync()

			e, err := opts.load()
			if err != nil {
				return err
			}

			app := e.conf.App()
			st := converter.New(app.DefaultFrom(), app.DefaultTo(), app.DefaultAmount())
			if err = e.service.LoadCurrencies(c.Context(), st); err != nil {
				return e.fail(err)
			}

			out := c.OutOrStdout()
			for _, code := range st.Currencies() {
				fmt.Fprintln(out, code)
			}
			return nil
		},
	}
}
