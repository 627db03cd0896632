package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var removeWeekFlag string

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a transaction by id",
	Long: `Delete a transaction from the bucket of the given week. Without
--week the current week is targeted. Removing an id that does not exist in
the targeted bucket changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetWeek := time.Now()
		if removeWeekFlag != "" {
			var err error
			targetWeek, err = time.ParseInLocation("2006-01-02", removeWeekFlag, time.Local)
			if err != nil {
				return fail(fmt.Errorf("invalid --week %q: use YYYY-MM-DD", removeWeekFlag))
			}
		}

		svc, _, err := setup(cmd.Context())
		if err != nil {
			return fail(err)
		}
		defer svc.Close()

		svc.RemoveTransaction(cmd.Context(), args[0], targetWeek)
		fmt.Println("Done.")
		return nil
	},
}

func init() {
	removeCmd.Flags().StringVar(&removeWeekFlag, "week", "", "any date (YYYY-MM-DD) inside the week to remove from")
	rootCmd.AddCommand(removeCmd)
}
