package config

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Upload      UploadConfig      `yaml:"upload"`
	Collections CollectionsConfig `yaml:"collections"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite, mysql
	DSN  string `yaml:"dsn"`
}

type UploadConfig struct {
	Dir string `yaml:"dir"`
	// MaxFileSize is the per-file upload limit in bytes.
	MaxFileSize int64 `yaml:"max_file_size"`
	// StagingMaxAgeMinutes controls when leftover staging directories are
	// considered stale and swept on startup.
	StagingMaxAgeMinutes int `yaml:"staging_max_age_minutes"`
}

type CollectionsConfig struct {
	Portfolio CollectionRules `yaml:"portfolio"`
	News      CollectionRules `yaml:"news"`
	Program   CollectionRules `yaml:"program"`
}

// CollectionRules is the per-collection validation profile: the fixed
// category set, the fields a create must carry, and the image file cap.
// Earlier handler revisions required more fields for news; which policy
// applies is deployment configuration, not code.
type CollectionRules struct {
	Categories []string `yaml:"categories"`
	Required   []string `yaml:"required"`
	MaxImages  int      `yaml:"max_images"`
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func loadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/app.db",
		},
		Upload: UploadConfig{
			Dir:                  "./uploads",
			MaxFileSize:          50 * 1024 * 1024,
			StagingMaxAgeMinutes: 60,
		},
		Collections: CollectionsConfig{
			Portfolio: CollectionRules{
				Categories: []string{"Consulting", "Investment", "Education", "Networking"},
				Required:   []string{"category", "name", "content", "logo"},
			},
			News: CollectionRules{
				Categories: []string{"Consulting", "Investment", "Education", "Networking", "Notice", "Press"},
				Required:   []string{"title", "content"},
				MaxImages:  10,
			},
			Program: CollectionRules{
				Categories: []string{"Consulting", "Investment", "Education", "Networking"},
				Required:   []string{"title", "content"},
				MaxImages:  10,
			},
		},
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	// 환경 변수가 설정 파일보다 우선한다
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		config.Server.Mode = mode
	}
	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		config.Database.Type = dbType
	}
	if dbDSN := os.Getenv("DB_DSN"); dbDSN != "" {
		config.Database.DSN = dbDSN
	}
	if uploadDir := os.Getenv("UPLOAD_DIR"); uploadDir != "" {
		config.Upload.Dir = uploadDir
	}

	return config
}
