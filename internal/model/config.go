package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	Wiki         WikiConfig         `yaml:"wiki" json:"wiki" mapstructure:"wiki"`
	Graph        GraphConfig        `yaml:"graph" json:"graph" mapstructure:"graph"`
	Cache        CacheConfig        `yaml:"cache" json:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" json:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" json:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" json:"output" mapstructure:"output"`
}

// WikiConfig configures access to the source wiki's MediaWiki API
type WikiConfig struct {
	APIURL       string        `yaml:"api_url" json:"api_url" mapstructure:"api_url"`
	BaseURL      string        `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" mapstructure:"user_agent"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
	Retries      int           `yaml:"retries" json:"retries" mapstructure:"retries"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty" mapstructure:"https_proxy"`
}

// GraphConfig configures the identifier spaces and output graph
type GraphConfig struct {
	// Base is the knowledge-graph namespace root; entity identifiers live
	// under Base/resource/, document identifiers under Base/page/
	Base string `yaml:"base" json:"base" mapstructure:"base"`
	// MappingFile is the YAML template mapping (template name -> classes
	// and field rules)
	MappingFile string `yaml:"mapping_file" json:"mapping_file" mapstructure:"mapping_file"`
	// LabelLang tags display labels (rdfs:label)
	LabelLang string `yaml:"label_lang" json:"label_lang" mapstructure:"label_lang"`
	// ChunkSize is the number of pages accumulated per output chunk file
	ChunkSize int `yaml:"chunk_size" json:"chunk_size" mapstructure:"chunk_size"`
}

// CacheConfig configures the fetched-page cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" json:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig configures parallel page processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers" mapstructure:"workers"`
}

// RateLimitingConfig throttles requests against the source wiki
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig configures where chunk files land
type OutputConfig struct {
	Dir     string `yaml:"dir" json:"dir" mapstructure:"dir"`
	Verbose bool   `yaml:"verbose" json:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults. Pages are cached for 30 days
// so re-runs do not hammer the wiki.
func DefaultConfig() *Config {
	return &Config{
		Wiki: WikiConfig{
			APIURL:       "https://tolkiengateway.net/w/api.php",
			BaseURL:      "https://tolkiengateway.net/wiki/",
			UserAgent:    "Wikigraph/0.1 (+https://github.com/ppiankov/wikigraph)",
			Timeout:      30 * time.Second,
			Retries:      5,
			MaxBodyBytes: 10 * 1024 * 1024,
		},
		Graph: GraphConfig{
			Base:        "https://lotr-kg.org",
			MappingFile: "configs/infobox_mappings.yaml",
			LabelLang:   "en",
			ChunkSize:   500,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   30 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Output: OutputConfig{
			Dir: "./wikigraph-out",
		},
	}
}
