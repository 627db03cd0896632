package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weeksCmd = &cobra.Command{
	Use:   "weeks",
	Short: "Show the current week and, if enabled, previous weeks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := setup(cmd.Context())
		if err != nil {
			return fail(err)
		}
		defer svc.Close()

		ledger := svc.Ledger()
		printBucket(ledger.CurrentWeek)

		if !svc.ShowPreviousWeeks() {
			return nil
		}
		// Most recently archived week first.
		for i := len(ledger.PreviousWeeks) - 1; i >= 0; i-- {
			fmt.Println()
			printBucket(ledger.PreviousWeeks[i])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weeksCmd)
}
