package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"planner"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address         string   `envconfig:"RENOVATION_PLANNER_ADDRESS" default:":3443"`
	MetricsAddress  string   `envconfig:"RENOVATION_PLANNER_METRICS_ADDRESS" default:":8080"`
	LogLevel        string   `envconfig:"RENOVATION_PLANNER_LOG_LEVEL" default:"info"`
	CatalogFile     string   `envconfig:"RENOVATION_PLANNER_CATALOG_FILE" default:""`
	MigrationFolder string   `envconfig:"RENOVATION_PLANNER_MIGRATIONS_FOLDER" default:""`
	CorsOrigins     []string `envconfig:"RENOVATION_PLANNER_CORS_ORIGINS" default:"*"`
	Reports         reportsConfig
}

// reportsConfig points to the S3 compatible bucket estimation reports are published to.
// Publishing is disabled when Endpoint is empty.
type reportsConfig struct {
	Endpoint  string `envconfig:"RENOVATION_PLANNER_S3_ENDPOINT" default:""`
	Bucket    string `envconfig:"RENOVATION_PLANNER_S3_BUCKET" default:"renovation-reports"`
	AccessKey string `envconfig:"RENOVATION_PLANNER_S3_ACCESS_KEY" default:""`
	SecretKey string `envconfig:"RENOVATION_PLANNER_S3_SECRET_KEY" default:""`
	UseSSL    bool   `envconfig:"RENOVATION_PLANNER_S3_USE_SSL" default:"false"`
}

func (r reportsConfig) Enabled() bool {
	return r.Endpoint != ""
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a configuration backed by an in-memory sqlite database.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{
			Type: "sqlite",
			Name: "file::memory:?cache=shared",
		},
		Service: &svcConfig{
			Address:        ":3443",
			MetricsAddress: ":8080",
			LogLevel:       "info",
			CorsOrigins:    []string{"*"},
			Reports:        reportsConfig{Bucket: "renovation-reports"},
		},
	}
}
