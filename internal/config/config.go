package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete runtime configuration. It is built once at
// startup from defaults, the config file and the environment, then
// handed by reference to the pipeline and providers. Nothing reads
// global state after that.
type Config struct {
	TextDir string        `yaml:"text_dir"` // Essay corpus directory
	LogDir  string        `yaml:"log_dir"`  // Parent of per-run output directories
	Workers int           `yaml:"workers"`  // Concurrent essays in flight
	Timeout time.Duration `yaml:"timeout"`  // Per model call

	HTTPProxy  string `yaml:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy,omitempty"`

	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`

	Gemini  GeminiConfig  `yaml:"gemini"`
	Bedrock BedrockConfig `yaml:"bedrock"`
	Azure   AzureConfig   `yaml:"azure"`
}

// RateLimitConfig bounds outbound model calls per provider.
// RequestsPerSecond <= 0 disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CacheConfig controls the layered response cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"` // Empty means ~/.argumint/cache
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// GeminiConfig holds Google AI credentials and model selection.
type GeminiConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
	Model  string `yaml:"model"`
}

// BedrockConfig holds AWS credentials for Claude via Bedrock.
type BedrockConfig struct {
	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`
	Region          string `yaml:"region"`
	Model           string `yaml:"model"`
	Endpoint        string `yaml:"endpoint,omitempty"` // Override for testing
}

// AzureConfig holds Azure OpenAI credentials and deployment selection.
type AzureConfig struct {
	APIKey     string `yaml:"api_key,omitempty"`
	Endpoint   string `yaml:"endpoint,omitempty"`
	APIVersion string `yaml:"api_version"`
	Deployment string `yaml:"deployment"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		TextDir: filepath.Join("data", "text"),
		LogDir:  "logs",
		Workers: 5,
		Timeout: 120 * time.Second,
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 0,
			Burst:             1,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Gemini: GeminiConfig{
			Model: "gemini-1.5-flash",
		},
		Bedrock: BedrockConfig{
			Region: "us-east-1",
			Model:  "anthropic.claude-3-5-sonnet-20241022-v2:0",
		},
		Azure: AzureConfig{
			APIVersion: "2024-06-01",
			Deployment: "gpt-4o",
		},
	}
}

// FromViper layers file values from viper over the defaults and then
// resolves credentials from the environment. Only keys actually present
// in the file override anything, so a sparse config file stays sparse.
func FromViper() *Config {
	cfg := Default()

	setString(&cfg.TextDir, "text_dir")
	setString(&cfg.LogDir, "log_dir")
	setInt(&cfg.Workers, "workers")
	setDuration(&cfg.Timeout, "timeout")
	setString(&cfg.HTTPProxy, "http_proxy")
	setString(&cfg.HTTPSProxy, "https_proxy")

	setFloat(&cfg.RateLimit.RequestsPerSecond, "rate_limit.requests_per_second")
	setInt(&cfg.RateLimit.Burst, "rate_limit.burst")

	setBool(&cfg.Cache.Enabled, "cache.enabled")
	setString(&cfg.Cache.Dir, "cache.dir")
	setDuration(&cfg.Cache.MemoryTTL, "cache.memory_ttl")
	setDuration(&cfg.Cache.DiskTTL, "cache.disk_ttl")

	setString(&cfg.Gemini.APIKey, "gemini.api_key")
	setString(&cfg.Gemini.Model, "gemini.model")

	setString(&cfg.Bedrock.AccessKeyID, "bedrock.access_key_id")
	setString(&cfg.Bedrock.SecretAccessKey, "bedrock.secret_access_key")
	setString(&cfg.Bedrock.Region, "bedrock.region")
	setString(&cfg.Bedrock.Model, "bedrock.model")
	setString(&cfg.Bedrock.Endpoint, "bedrock.endpoint")

	setString(&cfg.Azure.APIKey, "azure.api_key")
	setString(&cfg.Azure.Endpoint, "azure.endpoint")
	setString(&cfg.Azure.APIVersion, "azure.api_version")
	setString(&cfg.Azure.Deployment, "azure.deployment")

	cfg.ResolveCredentials()
	return cfg
}

// ResolveCredentials fills provider credentials from the environment.
// Environment variables win over file values so secrets never need to
// live on disk.
func (c *Config) ResolveCredentials() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		c.Bedrock.AccessKeyID = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		c.Bedrock.SecretAccessKey = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.Bedrock.Region = v
	}
	if v := os.Getenv("AZURE_OPENAI_API_KEY"); v != "" {
		c.Azure.APIKey = v
	}
	if v := os.Getenv("AZURE_OPENAI_ENDPOINT"); v != "" {
		c.Azure.Endpoint = v
	}
}

// CacheDir resolves the effective cache directory.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".argumint", "cache")
	}
	return filepath.Join(home, ".argumint", "cache")
}

func setString(dst *string, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

func setInt(dst *int, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetInt(key)
	}
}

func setBool(dst *bool, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetBool(key)
	}
}

func setFloat(dst *float64, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetFloat64(key)
	}
}

func setDuration(dst *time.Duration, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetDuration(key)
	}
}
