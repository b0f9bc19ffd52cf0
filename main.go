package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	ProgName    = "repnum"
	ProgVersion = "1.0"
)

type Config struct {
	Base       string
	JSON       bool
	JSONIndent int
}

func (c *Config) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Base, "base", "b", c.Base,
		"force a base for interpreting NUMBER (2 through 36)")

	flags.BoolVar(&c.JSON, "json", c.JSON, "JSON output")
	flags.IntVar(&c.JSONIndent, "json-indent", c.JSONIndent, "indent JSON output")
}

// ResolveBase validates the --base flag: decimal, in [2, 36]. A zero return
// with nil error means no base was forced (auto-detect).
func (c *Config) ResolveBase() (int, error) {
	if c.Base == "" {
		return 0, nil
	}
	n, err := EnsureNumber(c.Base, 10)
	if err != nil {
		return 0, err
	}
	b := int(n)
	if uint64(b) != n {
		return 0, fmt.Errorf("Unsupported base: %d", n)
	}
	return EnsureBase(b)
}

func (c *Config) WriteAll(w io.Writer, infos []NumInfo) error {
	if c.JSON {
		enc := json.NewEncoder(w)
		if c.JSONIndent > 0 {
			if c.JSONIndent == 8 {
				enc.SetIndent("", "\t")
			} else {
				enc.SetIndent("", strings.Repeat(" ", c.JSONIndent))
			}
		}
		for i := range infos {
			if err := enc.Encode(&infos[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for i := range infos {
		if _, err := infos[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func generateShellCompletion(cmd *cobra.Command, shell string) error {
	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell: %q", shell)
	}
}

// errUsage marks the missing-argument case: help has already been printed
// and main should exit 1 without a further diagnostic.
var errUsage = errors.New("usage")

func realMain() error {
	cmd := cobra.Command{
		Use:   "repnum [flags] <number>...",
		Short: "repnum displays a number in various base representations",
		Example: `
# Print 42 in decimal, hexadecimal, octal, and binary:
$ repnum 42

# Force base 16:
$ repnum -b 16 1A

# Generate shell completion:
$ repnum --completion [bash|zsh|fish|powershell]`[1:],

		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var conf Config
	if term.IsTerminal(int(os.Stdout.Fd())) {
		conf.JSONIndent = 4
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	conf.AddFlags(flags)

	version := flags.BoolP("version", "v", false, "output version then exit")
	genCompletion := flags.String("completion", "",
		"generate completion script [bash|zsh|fish|powershell]")
	cmd.RegisterFlagCompletionFunc(
		"completion",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"bash", "zsh", "fish", "powershell"}, cobra.ShellCompDirectiveDefault
		},
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if *version {
			fmt.Printf("%s v%s\n", ProgName, ProgVersion)
			return nil
		}
		if *genCompletion != "" {
			return generateShellCompletion(cmd, *genCompletion)
		}
		if len(args) == 0 {
			cmd.Help()
			return errUsage
		}

		base, err := conf.ResolveBase()
		if err != nil {
			return err
		}

		// Parse every argument before printing anything so that a bad
		// token produces no partial output.
		infos := make([]NumInfo, len(args))
		for i, s := range args {
			n, err := EnsureNumber(s, base)
			if err != nil {
				return err
			}
			infos[i] = NumInfo{Num: n, Base: base}
		}
		return conf.WriteAll(os.Stdout, infos)
	}

	return cmd.Execute()
}

func main() {
	if err := realMain(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", ProgName, err)
		}
		os.Exit(1)
	}
}
