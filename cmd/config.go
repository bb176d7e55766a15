package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ionut-t/sift/internal/config"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Set configuration values through flags, or open the config file in your editor when no flag is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			baseURL, _ := cmd.Flags().GetString(baseURLFlag)
			editorFlag, _ := cmd.Flags().GetString(config.EditorKey)
			themeFlag, _ := cmd.Flags().GetString(config.ThemeKey)

			out := cmd.OutOrStdout()
			flagsSet := false

			if baseURL != "" {
				if err := cfg.SetBaseURL(baseURL); err != nil {
					return err
				}
				flagsSet = true
				fmt.Fprintln(out, "Base URL set to:", baseURL)
			}

			if editorFlag != "" {
				if err := cfg.SetEditor(editorFlag); err != nil {
					return err
				}
				flagsSet = true
				fmt.Fprintln(out, "Editor set to:", editorFlag)
			}

			if themeFlag != "" {
				if err := cfg.SetTheme(themeFlag); err != nil {
					return err
				}
				flagsSet = true
				fmt.Fprintln(out, "Theme set to:", themeFlag)
			}

			if flagsSet {
				return nil
			}

			return openInEditor(cfg.Editor(), config.GetConfigFilePath())
		},
	}

	cmd.Flags().StringP(config.EditorKey, "e", "", "Set the editor used to edit the config file")
	cmd.Flags().StringP(config.ThemeKey, "t", "", "Set the theme (dark, light)")

	return cmd
}

func openInEditor(editor, configPath string) error {
	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error opening editor: %w", err)
	}

	return nil
}
