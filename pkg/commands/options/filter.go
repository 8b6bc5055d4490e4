package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/task"
)

// FilterOptions selects the view positions refer to.
type FilterOptions struct {
	Filter string
}

func AddFilterArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", string(task.All),
		"Show or address tasks in this view: all, active or completed.")
	_ = cmd.RegisterFlagCompletionFunc("filter", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, 3)
		for _, f := range task.Filters() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *FilterOptions) Get() (task.Filter, error) {
	return task.ParseFilter(o.Filter)
}
