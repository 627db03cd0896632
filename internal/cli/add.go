package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"weekly/internal/core"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Record a transaction in the current week",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fail(errors.New("name cannot be empty"))
		}
		cents, err := core.ParseDecimalToCents(args[1])
		if err != nil {
			return fail(fmt.Errorf("amount %q must be a positive number", args[1]))
		}

		svc, _, err := setup(cmd.Context())
		if err != nil {
			return fail(err)
		}
		defer svc.Close()

		tx, err := svc.AddTransaction(cmd.Context(), name, core.Money{Cents: cents})
		if err != nil {
			return fail(err)
		}

		bucket := svc.Ledger().CurrentWeek
		fmt.Printf("Added %s (%s) on %s\n", tx.Name, tx.Amount, core.FormatDateTime(tx.Timestamp))
		fmt.Printf("Week %s: daily %s, weekly %s\n",
			core.WeekLabel(bucket.WeekStart), bucket.DailyTotal, bucket.WeeklyTotal)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
