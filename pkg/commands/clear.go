package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/clean"
)

func addClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every completed task",
		Example: `
todo clear
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			c := clean.Clean{
				Store:   s.Store,
				Printer: &printers.PrettyPrint{JSON: output.JSON},
			}
			err = c.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
