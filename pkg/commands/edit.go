package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "edit <n> <new text>",
		Short: "Reword task n",
		Example: `
todo edit 1 buy oat milk
todo edit 2 call the plumber --filter active
`,
		Args: cobra.MinimumNArgs(2),
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

			e := edit.Edit{
				Position: pos,
				Text:     strings.Join(args[1:], " "),
				Filter:   f,
				Store:    s.Store,
				Printer:  &printers.PrettyPrint{JSON: output.JSON},
			}
			err = e.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddFilterArg(cmd, fo)

	topLevel.AddCommand(cmd)
}
