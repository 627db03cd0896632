package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect or change display preferences",
}

var showPreviousCmd = &cobra.Command{
	Use:   "show-previous [on|off]",
	Short: "Toggle whether the weeks command lists previous weeks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := setup(cmd.Context())
		if err != nil {
			return fail(err)
		}
		defer svc.Close()

		if len(args) == 0 {
			state := "off"
			if svc.ShowPreviousWeeks() {
				state = "on"
			}
			fmt.Println("show-previous is", state)
			return nil
		}

		switch args[0] {
		case "on":
			svc.SetShowPreviousWeeks(cmd.Context(), true)
		case "off":
			svc.SetShowPreviousWeeks(cmd.Context(), false)
		default:
			return fail(fmt.Errorf("invalid value %q: use on or off", args[0]))
		}
		fmt.Println("show-previous set to", args[0])
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(showPreviousCmd)
	rootCmd.AddCommand(prefsCmd)
}
