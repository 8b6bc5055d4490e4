package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
todo ui
todo ui --log-file /tmp/todo.log --verbose
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(true)
			if err != nil {
				return err
			}
			defer s.Close()

			i := ui.UI{Store: s.Store}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
