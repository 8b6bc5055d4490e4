package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "toggle <n>",
		Aliases: []string{"done", "complete", "undo"},
		Short:   "Mark task n done, or open again",
		Example: `
todo toggle 2
todo done 1 --filter active
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

			t := toggle.Toggle{
				Position: pos,
				Filter:   f,
				Store:    s.Store,
				Printer:  &printers.PrettyPrint{JSON: output.JSON},
			}
			err = t.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddFilterArg(cmd, fo)

	topLevel.AddCommand(cmd)
}
