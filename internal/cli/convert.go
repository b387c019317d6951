package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"max.ks1230/fx-converter/internal/locale"
	"max.ks1230/fx-converter/internal/logger"
	"max.ks1230/fx-converter/internal/model/converter"
)

func convertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert AMOUNT FROM TO",
		Short: "Convert an amount at the latest rate",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			setupLogging(opts.debug, false)
			defer logger.Sync()

			e, err := opts.load()
			if err != nil {
				return err
			}

			if _, err = converter.ParseAmount(args[0]); err != nil {
				return e.fail(err)
			}

			st := converter.New(args[1], args[2], args[0])
			if err = e.service.LoadCurrencies(c.Context(), st); err != nil {
				return e.fail(err)
			}
			for _, code := range []string{st.From(), st.To()} {
				if !st.Currencies().Contains(code) {
					return &localizedError{
						text: fmt.Sprintf("%s%s: %s", e.catalog.Text(locale.ErrorPrefix), e.catalog.Text(locale.UnknownCurrency), code),
						err:  errors.Errorf("unknown currency %s", code),
					}
				}
			}

			if err = e.service.Convert(c.Context(), st); err != nil {
				return e.fail(err)
			}

			shown, ok := st.Display()
			if !ok {
				return e.fail(errors.New("conversion produced no result"))
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "%s %s = %s %s\n", args[0], st.From(), shown, st.To())
			if rate, ok := st.Rate(); ok {
				fmt.Fprintf(out, "1 %s = %s %s\n", st.From(), converter.FormatRate(rate), st.To())
			}
			return nil
		},
	}
}
