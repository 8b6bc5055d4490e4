package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"delete", "remove"},
		Short:   "Delete task n",
		Example: `
todo rm 3
todo rm 1 --filter completed
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			pos, err := options.ParsePosition(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			f, err := fo.Get()
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			r := remove.Remove{
				Position: pos,
				Filter:   f,
				Store:    s.Store,
				Printer:  &printers.PrettyPrint{JSON: output.JSON},
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddFilterArg(cmd, fo)

	topLevel.AddCommand(cmd)
}
