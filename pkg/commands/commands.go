package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/list"
	"tableflip.dev/todo/pkg/runner/ui"
	"tableflip.dev/todo/pkg/task"
)

var (
	output  = &options.OutputOptions{}
	session = &options.SessionOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "todo",
		Short: base.Wrap80("A task list on the command line. With no command, opens the task UI in a terminal and prints the list otherwise."),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			s, err := openSession(interactive)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			if interactive {
				i := ui.UI{Store: s.Store}
				return i.Do(cmd.Context())
			}
			l := list.List{Filter: task.All, Store: s.Store, JSON: output.JSON}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddSessionArgs(cmd, session)
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addList(topLevel)
	addToggle(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
