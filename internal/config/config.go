package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ionut-t/sift/internal/constants"
	"github.com/spf13/viper"
)

const rootDir = ".sift"
const configFileName = "config.toml"

const (
	BaseURLKey        = "base_url"
	EditorKey         = "editor"
	StorageKey        = "storage"
	ThemeKey          = "theme"
	HistoryPersistKey = "history.persist"
	HistoryLimitKey   = "history.limit"
	ChartHeightKey    = "chart.height"
	RequestTimeoutKey = "request.timeout"
	LogLevelKey       = "log.level"
)

// BaseURLEnv overrides the configured backend origin.
const BaseURLEnv = "SIFT_BASE_URL"

var ErrInvalidBaseURL = errors.New("invalid base URL")

type Config interface {
	BaseURL() string
	SetBaseURL(url string) error
	Editor() string
	SetEditor(editor string) error
	Storage() string
	Theme() string
	SetTheme(theme string) error
	PersistHistory() bool
	HistoryLimit() int
	ChartHeight() int
	RequestTimeout() time.Duration
	LogLevel() string
}

type config struct {
	v       *viper.Viper
	storage string
}

// New loads the configuration file, creating it with defaults when it does not exist.
func New() (Config, error) {
	return load(viper.GetViper(), "")
}

// NewFromFile loads the configuration from an explicit file, creating it with defaults
// when it does not exist.
func NewFromFile(path string) (Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (Config, error) {
	setDefaults(v)

	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("failed to create config: %w", err)
		}
	} else if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	c := &config{v: v}

	storage, err := c.resolveStorage(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	c.storage = storage

	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(BaseURLKey, constants.DefaultBaseURL)
	v.SetDefault(EditorKey, getDefaultEditor())
	v.SetDefault(ThemeKey, "dark")
	v.SetDefault(HistoryPersistKey, false)
	v.SetDefault(HistoryLimitKey, constants.DefaultHistoryLimit)
	v.SetDefault(ChartHeightKey, constants.DefaultChartHeight)
	v.SetDefault(RequestTimeoutKey, "0s")
	v.SetDefault(LogLevelKey, "info")
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, rootDir, configFileName), nil
}

func getDefaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if os.Getenv("WINDIR") != "" {
		return "notepad"
	}

	return "vim"
}

// GetConfigFilePath returns the path of the loaded global configuration file.
func GetConfigFilePath() string {
	return viper.ConfigFileUsed()
}

// BaseURL prefers the SIFT_BASE_URL environment variable over the config file.
func (c *config) BaseURL() string {
	if env := strings.TrimSpace(os.Getenv(BaseURLEnv)); env != "" {
		return strings.TrimRight(env, "/")
	}

	return strings.TrimRight(c.v.GetString(BaseURLKey), "/")
}

func (c *config) SetBaseURL(url string) error {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%w: %q must start with http:// or https://", ErrInvalidBaseURL, url)
	}

	return c.set(BaseURLKey, strings.TrimRight(url, "/"))
}

func (c *config) Editor() string {
	if editor := c.v.GetString(EditorKey); editor != "" {
		return editor
	}

	return getDefaultEditor()
}

func (c *config) SetEditor(editor string) error {
	if editor == c.Editor() {
		return nil
	}

	return c.set(EditorKey, editor)
}

func (c *config) Storage() string {
	return c.storage
}

func (c *config) Theme() string {
	if strings.EqualFold(c.v.GetString(ThemeKey), "light") {
		return "light"
	}

	return "dark"
}

func (c *config) SetTheme(theme string) error {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unsupported theme %q (supported: dark, light)", theme)
	}

	return c.set(ThemeKey, theme)
}

func (c *config) PersistHistory() bool {
	return c.v.GetBool(HistoryPersistKey)
}

func (c *config) HistoryLimit() int {
	if limit := c.v.GetInt(HistoryLimitKey); limit > 0 {
		return limit
	}

	return constants.DefaultHistoryLimit
}

func (c *config) ChartHeight() int {
	if height := c.v.GetInt(ChartHeightKey); height > 0 {
		return height
	}

	return constants.DefaultChartHeight
}

func (c *config) RequestTimeout() time.Duration {
	if d := c.v.GetDuration(RequestTimeoutKey); d > 0 {
		return d
	}

	return 0
}

func (c *config) LogLevel() string {
	return c.v.GetString(LogLevelKey)
}

func (c *config) set(key string, value any) error {
	c.v.Set(key, value)
	return c.v.WriteConfig()
}

func (c *config) resolveStorage(configDir string) (string, error) {
	storage := c.v.GetString(StorageKey)
	if storage == "" {
		storage = configDir
	}

	if err := os.MkdirAll(storage, 0o755); err != nil {
		return "", err
	}

	return storage, nil
}
