package config

import (
	"encoding/xml"
	"io"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element of config.xml.
type APIConfig struct {
	XMLName     xml.Name      `xml:"API"`
	RequestDump bool          `xml:"REQUEST_DUMP,attr"`
	Context     ContextConfig `xml:"CONTEXT"`
	Seed        SeedConfig    `xml:"SEED"`
	AI          AIConfig      `xml:"AI"`
	Report      ReportConfig  `xml:"REPORT"`
	Logging     LoggingConfig `xml:"LOGGING"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	TimeZone string `xml:"TIME_ZONE"`
}

// SeedConfig controls demo data loaded at startup.
type SeedConfig struct {
	MockStudents bool `xml:"MOCK_STUDENTS"`
}

// AIConfig selects and parameterizes the narrative text provider.
// The API key is never read here: it comes from the environment at startup
// and is handed to the LLM client as explicit configuration.
type AIConfig struct {
	RatePerMinute  int    `xml:"RATE_LIMIT_PER_MINUTE,attr"`
	Provider       string `xml:"PROVIDER"`
	Model          string `xml:"MODEL"`
	BaseURL        string `xml:"BASE_URL"`
	TimeoutSeconds int    `xml:"TIMEOUT_SECONDS"`
}

// ReportConfig holds PDF report output settings.
type ReportConfig struct {
	OutputDir string `xml:"OUTPUT_DIR"`
}

// LoggingConfig holds log file settings.
type LoggingConfig struct {
	Dir string `xml:"DIR"`
}

// LoadConfig loads and parses the XML configuration from the given file.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			return
		}

		applyDefaults(&newCfg)
		cfg = &newCfg
	})

	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

func applyDefaults(c *APIConfig) {
	if c.Context.Host == "" {
		c.Context.Host = "0.0.0.0"
	}
	if c.Context.Port == 0 {
		c.Context.Port = 8080
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "mock"
	}
	if c.AI.TimeoutSeconds == 0 {
		c.AI.TimeoutSeconds = 60
	}
	if c.AI.RatePerMinute == 0 {
		c.AI.RatePerMinute = 10
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "working/reports"
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = "logs"
	}
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
