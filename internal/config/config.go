package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// ErrInvalidConfig wraps every configuration failure
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Bitbucket  Bitbucket
	Jira       Jira
	Debug      bool   `env:"DEBUG" env-default:"false" env-description:"enable debug logging and HTTP tracing"`
	LogFile    string `env:"LOG_FILE" env-description:"also append logs to this file"`
	ReportFile string `env:"REPORT_FILE" env-default:"qa_reviews_report.csv" env-description:"CSV report path"`
}

type Bitbucket struct {
	Email        string `env:"BITBUCKET_EMAIL" env-required:"true" env-description:"Bitbucket account e-mail"`
	APIToken     string `env:"BITBUCKET_API_TOKEN" env-required:"true" env-description:"Bitbucket API token"`
	Workspace    string `env:"BITBUCKET_WORKSPACE" env-required:"true" env-description:"Bitbucket workspace slug"`
	Repositories string `env:"BITBUCKET_REPOSITORIES" env-required:"true" env-description:"comma-separated repository slugs"`
	APIURL       string `env:"BITBUCKET_API_URL" env-default:"https://api.bitbucket.org/2.0" env-description:"Bitbucket API base URL"`
}

type Jira struct {
	BaseURL  string `env:"JIRA_BASE_URL" env-description:"Jira site URL, enables issue types"`
	Email    string `env:"JIRA_EMAIL" env-description:"Jira account e-mail"`
	APIToken string `env:"JIRA_API_TOKEN" env-description:"Jira API token"`
}

// Load reads an optional env file, then the process environment.
// An empty envFile means ".env" in the working directory, if present.
func Load(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v (ensure %s are set)", ErrInvalidConfig, err, strings.Join(requiredVariables, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var requiredVariables = []string{
	"BITBUCKET_EMAIL",
	"BITBUCKET_API_TOKEN",
	"BITBUCKET_WORKSPACE",
	"BITBUCKET_REPOSITORIES",
}

// Validate rejects required settings that are present but blank
func (c *Config) Validate() error {
	var missing []string
	values := []string{c.Bitbucket.Email, c.Bitbucket.APIToken, c.Bitbucket.Workspace, c.Bitbucket.Repositories}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, requiredVariables[i])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required environment variables: %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	if len(c.RepositoryList()) == 0 {
		return fmt.Errorf("%w: BITBUCKET_REPOSITORIES contains no repository", ErrInvalidConfig)
	}
	return nil
}

// RepositoryList splits the repository setting, dropping blanks
func (c *Config) RepositoryList() []string {
	var repos []string
	for _, r := range strings.Split(c.Bitbucket.Repositories, ",") {
		if r = strings.TrimSpace(r); r != "" {
			repos = append(repos, r)
		}
	}
	return repos
}

// JiraEnabled reports whether issue types can be looked up
func (c *Config) JiraEnabled() bool {
	return c.Jira.BaseURL != "" && c.Jira.Email != "" && c.Jira.APIToken != ""
}

// Description lists the environment variables understood by Load
func Description() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}

func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: cannot load env file %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}
