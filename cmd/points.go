package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPointsCmd(a *app) *cobra.Command {
	var (
		amount     string
		useDecimal bool
	)
	pointsCmd := &cobra.Command{
		Use:   "points",
		Short: "Compute the loyalty points needed to cover an amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			var points int64
			if useDecimal {
				d, err := parseDecimal("amount", amount)
				if err != nil {
					return err
				}
				points = a.calc.PointsNeededDecimal(d)
			} else {
				values, err := parseFloats(map[string]string{"amount": amount})
				if err != nil {
					return err
				}
				points = a.calc.PointsNeeded(values["amount"])
			}
			a.log.Debug().Str("amount", amount).Int64("points", points).Msg("points computed")
			fmt.Fprintf(cmd.OutOrStdout(), "Points needed: %d\n", points)
			return nil
		},
	}
	pointsCmd.Flags().StringVar(&amount, "amount", "0", "Amount to cover with points")
	pointsCmd.Flags().BoolVar(&useDecimal, "decimal", false, "Use fixed-point decimal arithmetic")
	return pointsCmd
}
