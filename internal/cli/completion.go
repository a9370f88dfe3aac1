package cli

import (
	"io"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand prints a shell completion script. Demo ids complete
// with their titles as descriptions unless --no-descriptions is set.
func (c *CLI) completionCommand() *cobra.Command {
	var noDesc bool

	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Print a shell completion script",
		Long: `Print a completion script for bash, zsh, fish or powershell.

Demo ids passed to render complete from the catalog, for example
"uithings render ho<TAB>" offers hole-button.`,
		Example: `  source <(uithings completion bash)
  uithings completion zsh > "${fpath[1]}/_uithings"
  uithings completion fish > ~/.config/fish/completions/uithings.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCompletion(cmd.Root(), args[0], !noDesc, stdout)
		},
	}

	cmd.Flags().BoolVar(&noDesc, "no-descriptions", false, "omit demo titles from completions")
	return cmd
}

func writeCompletion(root *cobra.Command, shell string, desc bool, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, desc)
	case "zsh":
		if desc {
			return root.GenZshCompletion(w)
		}
		return root.GenZshCompletionNoDesc(w)
	case "fish":
		return root.GenFishCompletion(w, desc)
	case "powershell":
		if desc {
			return root.GenPowerShellCompletionWithDesc(w)
		}
		return root.GenPowerShellCompletion(w)
	}
	return nil
}
