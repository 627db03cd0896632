package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekly/internal/core"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current week's transactions and totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := setup(cmd.Context())
		if err != nil {
			return fail(err)
		}
		defer svc.Close()

		printBucket(svc.Ledger().CurrentWeek)
		return nil
	},
}

func printBucket(b core.WeekBucket) {
	fmt.Printf("Week %s\n", core.WeekLabel(b.WeekStart))
	if len(b.Transactions) == 0 {
		fmt.Println("  (no transactions)")
	}
	for _, tx := range b.Transactions {
		fmt.Printf("  %-26s  %8s  %s  [%s]\n",
			tx.Name, tx.Amount, core.FormatDateTime(tx.Timestamp), tx.ID)
	}
	fmt.Printf("  Today: %s   Week: %s\n", b.DailyTotal, b.WeeklyTotal)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
