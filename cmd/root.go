package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/ionut-t/sift/internal/config"
	"github.com/ionut-t/sift/internal/logger"
	"github.com/ionut-t/sift/internal/version"
	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/tui"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const baseURLFlag = "base-url"

// session is what every command needs to talk to the backend.
type session struct {
	config config.Config
	logger zerolog.Logger
	client *api.Client
	closer io.Closer
}

func (s *session) Close() {
	_ = s.closer.Close()
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, closer, err := logger.New(cfg.Storage(), cfg.LogLevel())
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	baseURL := cfg.BaseURL()
	if flag, _ := cmd.Flags().GetString(baseURLFlag); flag != "" {
		baseURL = flag
	}

	client := api.New(baseURL,
		api.WithLogger(log),
		api.WithTimeout(cfg.RequestTimeout()),
	)

	log.Debug().Str("base_url", client.BaseURL()).Str("command", cmd.Name()).Msg("session started")

	return &session{
		config: cfg,
		logger: log,
		client: client,
		closer: closer,
	}, nil
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sift",
		Short: "Ask questions about CSV and Excel files in plain English.",
		Long: "sift uploads tabular files to an NL-to-SQL service, asks it questions and shows the " +
			"generated SQL, Python and PySpark together with the result table and a chart.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			return workspaceUI(s)
		},
	}

	cmd.PersistentFlags().String(baseURLFlag, "", "backend origin (overrides "+config.BaseURLEnv+" and the config file)")

	cmd.AddCommand(
		uploadCmd(),
		askCmd(),
		configCmd(),
		versionCmd(),
	)

	return cmd
}

func Execute() {
	err := fang.Execute(
		context.Background(),
		rootCmd(),
		fang.WithVersion(version.Version()),
		fang.WithCommit(version.Commit()),
	)

	if err != nil {
		os.Exit(1)
	}
}

// loadEnv reads a .env file from the working directory when there is one. Variables
// already set in the environment win.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error reading .env: %v\n", err)
	}
}

func workspaceUI(s *session) error {
	m := tui.New(s.config, s.client, s.logger)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		s.logger.Error().Err(err).Msg("ui stopped")
		return fmt.Errorf("error running UI: %w", err)
	}

	return nil
}
