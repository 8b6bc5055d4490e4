package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List tasks, numbered for toggle, edit and rm",
		Example: `
todo list
todo list --filter active
todo list -f completed --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			f, err := fo.Get()
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			l := list.List{
				Filter: f,
				ShowID: io.ShowID,
				JSON:   output.JSON,
				Store:  s.Store,
			}
			err = l.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddFilterArg(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
