package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newFinalCmd(a *app) *cobra.Command {
	var (
		price, coupon, pointsValue string
		useDecimal                 bool
	)
	finalCmd := &cobra.Command{
		Use:   "final",
		Short: "Compute the final price after coupon and points discounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if useDecimal {
				return a.runFinalDecimal(cmd, price, coupon, pointsValue)
			}
			return a.runFinal(cmd, price, coupon, pointsValue)
		},
	}
	finalCmd.Flags().StringVar(&price, "price", "0", "Original price")
	finalCmd.Flags().StringVar(&coupon, "coupon", "0", "Coupon discount amount")
	finalCmd.Flags().StringVar(&pointsValue, "points-value", "0", "Discount amount already converted from points")
	finalCmd.Flags().BoolVar(&useDecimal, "decimal", false, "Use fixed-point decimal arithmetic")
	return finalCmd
}

func (a *app) runFinal(cmd *cobra.Command, price, coupon, pointsValue string) error {
	values, err := parseFloats(map[string]string{"price": price, "coupon": coupon, "points-value": pointsValue})
	if err != nil {
		return err
	}
	q := a.calc.Quote(values["price"], values["coupon"], values["points-value"])
	a.log.Debug().
		Float64("original_price", q.OriginalPrice).
		Float64("coupon", q.CouponValue).
		Float64("points_value", q.PointsValue).
		Float64("final_price", q.FinalPrice).
		Msg("final price computed")

	out := cmd.OutOrStdout()
	table := tablewriter.NewWriter(out)
	table.Header("Component", "Amount", "Points")
	rows := [][]string{
		{"Original price", formatFloat(q.OriginalPrice), "-"},
		{"Coupon", formatFloat(q.CouponValue), "-"},
		{"Points discount", formatFloat(q.PointsValue), strconv.FormatInt(q.PointsUsed, 10)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("render quote: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render quote: %w", err)
	}
	fmt.Fprintf(out, "Final price: %s\n", formatFloat(q.FinalPrice))
	return nil
}

func (a *app) runFinalDecimal(cmd *cobra.Command, price, coupon, pointsValue string) error {
	p, err := parseDecimal("price", price)
	if err != nil {
		return err
	}
	c, err := parseDecimal("coupon", coupon)
	if err != nil {
		return err
	}
	v, err := parseDecimal("points-value", pointsValue)
	if err != nil {
		return err
	}
	final := a.calc.FinalPriceDecimal(p, c, v)
	a.log.Debug().Str("final_price", final.String()).Msg("final price computed")
	fmt.Fprintf(cmd.OutOrStdout(), "Final price: %s\n", final.String())
	return nil
}

func parseFloats(raw map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for name, value := range raw {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", name, value, err)
		}
		out[name] = f
	}
	return out, nil
}

func parseDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
