package config

import (
	"encoding/xml"
	"io"
	"os"
	"sync"
)

var (
	cfg     *APIConfig
	loadErr error
	once    sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName     xml.Name         `xml:"API"`
	RequestDump bool             `xml:"REQUEST_DUMP,attr"`
	Context     ContextConfig    `xml:"CONTEXT"`
	Pagination  PaginationConfig `xml:"PAGINATION"`
	RateLimit   RateLimitConfig  `xml:"RATE_LIMIT"`
	DB          DBConfig         `xml:"DB"`
	Mail        MailConfig       `xml:"MAIL"`
	Export      ExportConfig     `xml:"EXPORT"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Path     string `xml:"PATH"`
	TimeZone string `xml:"TIME_ZONE"`
}

// PaginationConfig holds pagination settings.
type PaginationConfig struct {
	PageSize int `xml:"PAGE_SIZE"`
}

// RateLimitConfig holds request throttling settings.
type RateLimitConfig struct {
	Enabled           bool    `xml:"ENABLED,attr"`
	RequestsPerSecond float64 `xml:"REQUESTS_PER_SECOND"`
	Burst             int     `xml:"BURST"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	SSLMode    string       `xml:"SSL_MODE"`
	Name       string       `xml:"NAME"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// MailConfig holds welcome-mail settings. The SendGrid API key itself comes
// from the environment, not the config file.
type MailConfig struct {
	Enabled   bool   `xml:"ENABLED,attr"`
	FromEmail string `xml:"FROM_EMAIL"`
	FromName  string `xml:"FROM_NAME"`
}

// ExportConfig holds report PDF export settings.
type ExportConfig struct {
	Dir string `xml:"DIR"`
}

// LoadConfig loads and parses the XML configuration from the given file.
// The file is read once; later calls return the same config, or the error
// the first load hit.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		cfg, loadErr = parseConfig(xmlPath)
	})
	return cfg, loadErr
}

func parseConfig(xmlPath string) (*APIConfig, error) {
	f, err := os.Open(xmlPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var newCfg APIConfig
	if err := xml.Unmarshal(data, &newCfg); err != nil {
		return nil, err
	}
	return &newCfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
