package cmd

import (
	"fmt"

	"github.com/jfenske/redpen/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and show active profiles",
	Long: `Validate validates the redpen configuration file and displays the active
language profiles with their rule tables.

This is useful for:
- Checking that your config.toml syntax is correct
- Seeing which rules will actually run, after disabled_rules and extras
- Finding the rule names to use in disabled_rules`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := config.InitError(); err != nil {
		return fmt.Errorf("configuration invalid (running on embedded defaults): %w", err)
	}

	cfg := config.Get()
	if cfg == nil {
		return fmt.Errorf("failed to load configuration")
	}

	fmt.Println("Configuration valid!")
	fmt.Println()

	for _, p := range cfg.Profiles {
		fmt.Printf("%s profile (v%d), extensions %v, %d rule(s):\n",
			p.Name, p.Version, p.Extensions, len(p.Rules))
		for _, r := range p.Rules {
			fmt.Printf("  - %s [%s]: %s\n", r.Name, r.Severity, r.Description)
		}
		fmt.Println()
	}

	return nil
}
