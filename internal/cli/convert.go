package cli

import (
	"errors"
	"fmt"

	"fxcalc/internal/conversion"
	"fxcalc/internal/domain"
	"fxcalc/internal/render"

	"github.com/spf13/cobra"
)

type pairFlags struct {
	from string
	to   string
}

func (p *pairFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.from, "from", "f", "USD", "source currency code")
	cmd.Flags().StringVarP(&p.to, "to", "t", "KES", "target currency code")
}

func (p *pairFlags) normalized() (string, string, error) {
	from, to := conversion.NormalizeCode(p.from), conversion.NormalizeCode(p.to)
	if err := conversion.NewValidator(nil).ValidateCodes(from, to); err != nil {
		return "", "", err
	}
	return from, to, nil
}

func newConvertCmd(configPath *string) *cobra.Command {
	var (
		pair   pairFlags
		amount string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount and show the fee",
		Example: `  fxcalc convert --amount 100 --from USD --to KES
  fxcalc convert -a 25000 -f KES -t USD`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := pair.normalized()
			if err != nil {
				return err
			}
			engine, err := loadEngine(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			res, err := engine.Convert(domain.ConversionRequest{
				Amount: render.ParseAmount(amount),
				Source: from,
				Target: to,
			})
			if errors.Is(err, domain.ErrInvalidAmount) {
				fmt.Fprintln(cmd.ErrOrStderr(), render.InvalidAmountMessage)
				return errReported
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.RateLine(from, to, engine.GetRate(from, to)))
			fmt.Fprintln(out, render.NetLine(res))
			fmt.Fprintln(out, render.FeeLine(res))
			return nil
		},
	}
	pair.bind(cmd)
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount to convert")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newRateCmd(configPath *string) *cobra.Command {
	var pair pairFlags

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Show the exchange rate for a currency pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := pair.normalized()
			if err != nil {
				return err
			}
			engine, err := loadEngine(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.RateLine(from, to, engine.GetRate(from, to)))
			return nil
		},
	}
	pair.bind(cmd)
	return cmd
}

func newSwapCmd(configPath *string) *cobra.Command {
	var pair pairFlags

	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Flip a currency pair and show the rate in the new direction",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := pair.normalized()
			if err != nil {
				return err
			}
			engine, err := loadEngine(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			from, to = conversion.Swap(from, to)
			fmt.Fprintln(cmd.OutOrStdout(), render.RateLine(from, to, engine.GetRate(from, to)))
			return nil
		},
	}
	pair.bind(cmd)
	return cmd
}
