package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
)

var _ ports.ContentSettings = Config{}

const (
	configPathEnv  = "CONTENT_CONFIG"
	runtimeEnv     = "CONTENT_ENV"
	databaseDSNEnv = "DATABASE_DSN"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig        `yaml:"logging"`
	Database      DatabaseConfig       `yaml:"database"`
	Parameters    map[string]int64     `yaml:"parameters"`
	Summary       domain.Attributes    `yaml:"summary"`
	Organisations []OrganisationConfig `yaml:"organisations"`
	FieldDefaults []FieldDefaultConfig `yaml:"fieldDefaults"`
}

// LoggingConfig selects the slog level and handler format (text or json).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DatabaseConfig describes Postgres connection details. An empty DSN keeps
// organisations and parameters in memory.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// OrganisationConfig describes one organisation site and the settings of
// the content created for it.
type OrganisationConfig struct {
	Site    string            `yaml:"site"`
	Code    string            `yaml:"code"`
	Name    string            `yaml:"name"`
	Email   string            `yaml:"email"`
	Website string            `yaml:"website"`
	Posts   domain.Attributes `yaml:"posts"`
	Tools   domain.Attributes `yaml:"tools"`
	Roundup *RoundupConfig    `yaml:"roundup"`
}

// RoundupConfig describes the blog listing crawled for new posts.
type RoundupConfig struct {
	URL        string            `yaml:"url"`
	Item       string            `yaml:"item"`
	PageParam  string            `yaml:"pageParam"`
	MaxPages   int               `yaml:"maxPages"`
	Fields     []FieldRuleConfig `yaml:"fields"`
	PageFields []FieldRuleConfig `yaml:"pageFields"`
}

// FieldRuleConfig is the YAML form of domain.FieldRule.
type FieldRuleConfig struct {
	Field    string `yaml:"field"`
	Source   string `yaml:"source"`
	Selector string `yaml:"selector"`
	Attr     string `yaml:"attr"`
	Case     string `yaml:"case"`
}

// FieldDefaultConfig is the YAML form of domain.FieldDefault.
type FieldDefaultConfig struct {
	Site  string `yaml:"site"`
	Code  string `yaml:"code"`
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// Load reads .env files, the YAML configuration (if present) and applies
// environment overrides.
func Load() Config {
	loadDotEnvs()
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if fileCfg, err := Parse(raw); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Parse decodes a YAML configuration document.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadDotEnvs follows the dotenv convention: .env.<env>.local, .env.local,
// .env.<env>, .env. Earlier files win and real environment variables win
// over all of them.
func loadDotEnvs() {
	env := os.Getenv(runtimeEnv)
	if env == "" {
		env = "dev"
	}
	for _, name := range []string{".env." + env + ".local", ".env.local", ".env." + env, ".env"} {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("config: cannot load %s: %v", name, err)
		}
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	for k, v := range override.Parameters {
		base.Parameters[k] = v
	}

	if len(override.Summary) > 0 {
		base.Summary = override.Summary
	}

	if len(override.Organisations) > 0 {
		base.Organisations = override.Organisations
	}

	if len(override.FieldDefaults) > 0 {
		base.FieldDefaults = override.FieldDefaults
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging:    LoggingConfig{Level: "info", Format: "text"},
		Parameters: map[string]int64{domain.ParamMinWebinarDuration: domain.DefaultMinWebinarDuration},
	}
}

// SummaryConfig builds the global summary settings.
func (c Config) SummaryConfig() (domain.SummaryConfig, error) {
	return domain.ParseSummaryConfig(c.Summary)
}

// OrganisationList returns the configured organisation sites.
func (c Config) OrganisationList() []domain.Organisation {
	orgs := make([]domain.Organisation, 0, len(c.Organisations))
	for _, o := range c.Organisations {
		orgs = append(orgs, o.Organisation())
	}
	return orgs
}

// FindOrganisation returns the organisation configured for site and code.
func (c Config) FindOrganisation(site, code string) (OrganisationConfig, bool) {
	for _, o := range c.Organisations {
		if o.Site == site && o.Code == code {
			return o, true
		}
	}
	return OrganisationConfig{}, false
}

// ToolConfig resolves the tool settings of the organisation configured for
// site and code.
func (c Config) ToolConfig(site, code string) (domain.ToolConfig, bool, error) {
	o, ok := c.FindOrganisation(site, code)
	if !ok {
		return domain.ToolConfig{}, false, nil
	}
	cfg, err := o.ToolConfig()
	return cfg, true, err
}

// Defaults resolves every configured field default.
func (c Config) Defaults() ([]domain.FieldDefault, error) {
	out := make([]domain.FieldDefault, 0, len(c.FieldDefaults))
	var errs []error
	for i, d := range c.FieldDefaults {
		name, ok := domain.ParseFieldName(d.Field)
		if !ok {
			errs = append(errs, fmt.Errorf("fieldDefaults[%d]: %w: field %q", i, domain.ErrInvalidValue, d.Field))
			continue
		}
		out = append(out, domain.FieldDefault{SiteID: d.Site, Code: d.Code, Name: name, Value: d.Value})
	}
	return out, errors.Join(errs...)
}

func (o OrganisationConfig) Organisation() domain.Organisation {
	return domain.Organisation{
		SiteID:  o.Site,
		Code:    o.Code,
		Name:    o.Name,
		Email:   o.Email,
		Website: o.Website,
	}
}

// PostConfig builds the settings of new posts for the organisation.
func (o OrganisationConfig) PostConfig() (domain.PostConfig, error) {
	cfg, err := domain.ParsePostConfig(o.Posts)
	if err != nil {
		return cfg, fmt.Errorf("organisation %s posts: %w", o.Code, err)
	}
	return cfg, nil
}

// ToolConfig builds the settings of new tools for the organisation.
func (o OrganisationConfig) ToolConfig() (domain.ToolConfig, error) {
	cfg, err := domain.ParseToolConfig(o.Tools)
	if err != nil {
		return cfg, fmt.Errorf("organisation %s tools: %w", o.Code, err)
	}
	return cfg, nil
}

// RoundupRequest resolves the crawl settings of the organisation blog.
// ok is false when the organisation has no roundup configured.
func (o OrganisationConfig) RoundupRequest(since time.Time) (req ports.RoundupRequest, ok bool, err error) {
	if o.Roundup == nil {
		return ports.RoundupRequest{}, false, nil
	}
	req = ports.RoundupRequest{
		SiteName:  o.Code,
		URL:       o.Roundup.URL,
		Item:      o.Roundup.Item,
		PageParam: o.Roundup.PageParam,
		MaxPages:  o.Roundup.MaxPages,
		Since:     since,
	}
	for i, f := range o.Roundup.Fields {
		rule, err := domain.NewFieldRule(f.Field, f.Source, f.Selector, f.Attr, f.Case)
		if err != nil {
			return ports.RoundupRequest{}, true, fmt.Errorf("organisation %s roundup field %d: %w", o.Code, i, err)
		}
		req.Fields = append(req.Fields, rule)
	}
	for i, f := range o.Roundup.PageFields {
		rule, err := domain.NewFieldRule(f.Field, f.Source, f.Selector, f.Attr, f.Case)
		if err != nil {
			return ports.RoundupRequest{}, true, fmt.Errorf("organisation %s roundup page field %d: %w", o.Code, i, err)
		}
		req.PageFields = append(req.PageFields, rule)
	}
	return req, true, nil
}
