// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ProfileConfig represents the top-level configuration file structure.
// Stored at ~/.config/txcat/config.yaml
type ProfileConfig struct {
	CurrentProfile string             `yaml:"current-profile,omitempty"`
	Profiles       map[string]Profile `yaml:"profiles,omitempty"`
}

// Profile is a named set of connection settings for one environment.
type Profile struct {
	Source        string      `yaml:"source,omitempty"` // "es" or "api"
	Elasticsearch ESProfile   `yaml:"elasticsearch,omitempty"`
	API           APIProfile  `yaml:"api,omitempty"`
	OTLP          OTLPProfile `yaml:"otlp,omitempty"`
}

// ESProfile holds Elasticsearch connection settings for a profile.
type ESProfile struct {
	URL      string `yaml:"url,omitempty"`
	Index    string `yaml:"index,omitempty"`
	APIKey   string `yaml:"api-key,omitempty"` // Supports ${ENV_VAR} syntax
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"` // Supports ${ENV_VAR} syntax
}

// APIProfile holds trace API settings for a profile.
type APIProfile struct {
	URL    string `yaml:"url,omitempty"`
	WebURL string `yaml:"web-url,omitempty"`
	Token  string `yaml:"token,omitempty"` // Supports ${ENV_VAR} syntax
}

// OTLPProfile holds OTLP connection settings for a profile.
type OTLPProfile struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Insecure *bool  `yaml:"insecure,omitempty"` // Pointer to distinguish unset from false
}

// Default configuration directory and file names.
const (
	ConfigDirName  = "txcat"
	ConfigFileName = "config.yaml"
)

// GetConfigDir returns the path to the txcat config directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/txcat
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadProfiles loads the profile configuration from disk.
// Returns an empty ProfileConfig if the file doesn't exist.
func LoadProfiles() (*ProfileConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &ProfileConfig{Profiles: make(map[string]Profile)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	checkFilePermissions(path)

	var cfg ProfileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]Profile)
	}
	return &cfg, nil
}

// SaveProfiles writes the profile configuration to disk with 0600
// permissions, creating the config directory if needed.
func SaveProfiles(cfg *ProfileConfig) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// GetProfile returns the named profile, or an error if it doesn't exist.
func (c *ProfileConfig) GetProfile(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found", name)
	}
	return p, nil
}

// SetProfile creates or updates a named profile.
func (c *ProfileConfig) SetProfile(name string, profile Profile) {
	if c.Profiles == nil {
		c.Profiles = make(map[string]Profile)
	}
	c.Profiles[name] = profile
}

// DeleteProfile removes a named profile and clears it as current.
func (c *ProfileConfig) DeleteProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	delete(c.Profiles, name)
	if c.CurrentProfile == name {
		c.CurrentProfile = ""
	}
	return nil
}

// ListProfiles returns the profile names in sorted order.
func (c *ProfileConfig) ListProfiles() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetActiveProfile returns the currently active profile.
// If profileFlag is set, uses that. Otherwise uses current-profile from config.
// Returns nil profile and empty name if no profile is active.
func (c *ProfileConfig) GetActiveProfile(profileFlag string) (*Profile, string) {
	name := profileFlag
	if name == "" {
		name = c.CurrentProfile
	}
	if name == "" {
		return nil, ""
	}
	p, err := c.GetProfile(name)
	if err != nil {
		return nil, ""
	}
	return &p, name
}

// envVarPattern matches ${VAR_NAME} patterns
var envVarPattern = regexp.MustCompile(`^\$\{([^}]+)\}$`)

// IsEnvRef returns true if the string is an environment variable reference.
func IsEnvRef(s string) bool {
	return envVarPattern.MatchString(s)
}

// expandEnvVar expands a single ${VAR} reference. Values that are not
// references are returned as is.
func expandEnvVar(s string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(s)
	if len(matches) != 2 {
		return s, true
	}
	return os.LookupEnv(matches[1])
}

// credential is one secret-bearing field of a profile.
type credential struct {
	name  string
	value *string
}

func (p *Profile) credentials() []credential {
	return []credential{
		{"api-key", &p.Elasticsearch.APIKey},
		{"username", &p.Elasticsearch.Username},
		{"password", &p.Elasticsearch.Password},
		{"token", &p.API.Token},
	}
}

// Resolve returns a copy of the profile with all ${ENV_VAR} references expanded.
// Returns an error if any referenced environment variable is undefined.
func (p Profile) Resolve() (Profile, error) {
	resolved := p
	for _, c := range resolved.credentials() {
		if !IsEnvRef(*c.value) {
			continue
		}
		val, ok := expandEnvVar(*c.value)
		if !ok {
			return Profile{}, fmt.Errorf("undefined environment variable in %s: %s", c.name, *c.value)
		}
		*c.value = val
	}
	return resolved, nil
}

// HasCredentials returns true if the profile contains any authentication credentials.
func (p Profile) HasCredentials() bool {
	for _, c := range p.credentials() {
		if *c.value != "" {
			return true
		}
	}
	return false
}

// HasPlainTextCredentials returns true if the profile contains credentials
// that are not environment variable references.
func (p Profile) HasPlainTextCredentials() bool {
	for _, c := range p.credentials() {
		if *c.value != "" && !IsEnvRef(*c.value) {
			return true
		}
	}
	return false
}

// checkFilePermissions logs a warning if the config file is readable by
// group or others.
func checkFilePermissions(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if mode := info.Mode().Perm(); mode&0077 != 0 {
		logrus.WithField("path", path).Warnf("config file has permissions %04o, should be 0600", mode)
	}
}

// MaskCredentials returns a copy of the profile with plain text credentials
// replaced by "****". Environment variable references are kept.
func (p Profile) MaskCredentials() Profile {
	masked := p
	for _, c := range masked.credentials() {
		if *c.value != "" && !IsEnvRef(*c.value) {
			*c.value = "****"
		}
	}
	return masked
}

// MaskAllCredentials returns a copy of the config with all profile credentials masked.
func (c ProfileConfig) MaskAllCredentials() ProfileConfig {
	masked := ProfileConfig{
		CurrentProfile: c.CurrentProfile,
		Profiles:       make(map[string]Profile, len(c.Profiles)),
	}
	for name, profile := range c.Profiles {
		masked.Profiles[name] = profile.MaskCredentials()
	}
	return masked
}

// String returns a YAML representation of the config with credentials masked.
func (c ProfileConfig) String() string {
	data, err := yaml.Marshal(c.MaskAllCredentials())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return strings.TrimSpace(string(data))
}

// PlainTextCredentialWarning is printed when a saved profile holds plain
// text credentials.
func PlainTextCredentialWarning() string {
	return "Warning: Storing credentials in plain text. Consider using environment\n" +
		"variable references (e.g., api-key: ${MY_API_KEY}) for better security."
}
