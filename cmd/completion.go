package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/week"
)

func newCompletionCmd(d *cli.Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tally.

The completion command allows you to generate shell completion scripts for
bash, zsh, fish, and powershell. This enables tab-completion for commands,
flags, and arguments in your shell.

Usage:
  tally completion bash       Generate bash completion script
  tally completion zsh        Generate zsh completion script
  tally completion fish       Generate fish completion script
  tally completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(tally completion bash)

  # Install completion permanently:
  # Linux:
  tally completion bash > ~/.local/share/bash-completion/completions/tally

  # macOS (requires bash-completion from Homebrew):
  tally completion bash > $(brew --prefix)/etc/bash_completion.d/tally

Zsh:
  # Load completion temporarily (current session only):
  source <(tally completion zsh)

  # Install completion permanently:
  # Add to ~/.zshrc:
  echo 'fpath=(~/.zsh/completion $fpath)' >> ~/.zshrc
  echo 'autoload -Uz compinit && compinit' >> ~/.zshrc

  # Generate completion file:
  mkdir -p ~/.zsh/completion
  tally completion zsh > ~/.zsh/completion/_tally

  # Then restart your shell

Fish:
  # Install completion permanently:
  tally completion fish > ~/.config/fish/completions/tally.fish

PowerShell:
  # Open your PowerShell profile:
  notepad $PROFILE

  # Add this line to your profile:
  tally completion powershell | Out-String | Invoke-Expression

  # Save and restart PowerShell`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactValidArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			generateCompletion(cmd.Root(), d, args[0])
		},
	}
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(root *cobra.Command, d *cli.Deps, shell string) {
	var err error

	switch shell {
	case "bash":
		err = root.GenBashCompletion(d.Stdout)
	case "zsh":
		err = root.GenZshCompletion(d.Stdout)
	case "fish":
		err = root.GenFishCompletion(d.Stdout, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(d.Stdout)
	default:
		_, _ = fmt.Fprintf(d.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(d.Stderr, "Supported shells: bash, zsh, fish, powershell")
		d.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		d.Exit(1)
		return
	}
}

// dayValueHints are offered when completing a day flag of "tally week".
var dayValueHints = []string{"8h", "7h 30m", "7:30", "0"}

func completeDayValue(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return dayValueHints, cobra.ShellCompDirectiveNoFileComp
}

// completeUntracked completes the day key of the last pair in
// --untracked, e.g. "mon=30m,fr" -> "mon=30m,fri=".
func completeUntracked(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix, current := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, current = toComplete[:i+1], toComplete[i+1:]
	}
	if strings.Contains(current, "=") {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var out []string
	for _, day := range week.AllDays() {
		name := dayFlagName(day.Info())
		if strings.HasPrefix(name, strings.ToLower(current)) {
			out = append(out, prefix+name+"=")
		}
	}
	return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}
