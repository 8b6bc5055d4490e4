package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <task text>",
		Short: "Add a task",
		Example: `
todo add buy milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			a := add.Add{
				Text:    strings.Join(args, " "),
				Store:   s.Store,
				Printer: &printers.PrettyPrint{JSON: output.JSON},
			}
			err = a.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
