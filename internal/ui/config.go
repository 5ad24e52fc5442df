package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eclipsereads/eclipse/internal/config"
	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  eclipse config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(config.DefaultConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.StartScreen = promptStartScreen(reader, out, cfg.UI.StartScreen)
	cfg.UI.FeaturedRotate = promptValue(reader, out, "Featured rotation (e.g. 30s, 0 to disable)", cfg.UI.FeaturedRotate)
	cfg.Catalog.DBPath = promptValue(reader, out, "Catalog database (empty for built-in)", cfg.Catalog.DBPath)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[ui]")
	fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  start_screen     = %s\n", cfg.UI.StartScreen)
	fmt.Fprintf(out, "  featured_rotate  = %s\n", orNone(cfg.UI.FeaturedRotate))
	fmt.Fprintln(out, "\n[catalog]")
	if cfg.UsesBuiltinCatalog() {
		fmt.Fprintf(out, "  db_path          = %s\n", formatMuted("(built-in catalog)"))
	} else {
		fmt.Fprintf(out, "  db_path          = %s\n", cfg.Catalog.DBPath)
	}
}

func orNone(s string) string {
	if s == "" {
		return formatMuted("(off)")
	}
	return s
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptChoice asks until the answer is accepted. Input ending early keeps current.
func promptChoice(reader *bufio.Reader, out io.Writer, label, current string, options []string, ok func(string) bool) string {
	joined := strings.Join(options, ", ")
	prompt := fmt.Sprintf("%s (%s)", label, joined)
	for {
		value := strings.ToLower(promptValue(reader, out, prompt, current))
		if ok(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid value %q. Available: %s\n", value, joined)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	return promptChoice(reader, out, "UI theme", current, theme.Available(), theme.IsAvailable)
}

func promptStartScreen(reader *bufio.Reader, out io.Writer, current string) string {
	routes := nav.Routes()
	options := make([]string, len(routes))
	for i, r := range routes {
		options[i] = string(r)
	}
	return promptChoice(reader, out, "Start screen", current, options, func(v string) bool {
		return nav.IsRoute(nav.ScreenID(v))
	})
}
