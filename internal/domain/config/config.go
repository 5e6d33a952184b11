package config

import (
	"gopkg.in/yaml.v3"
	domainerr "inkwell/internal/domain/errors"
	"os"
	"strings"
)

type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Serve   ServeConfig   `yaml:"serve"`
}

type SiteConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
	Language string `yaml:"language"`
}

type ContentConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
}

type ServeConfig struct {
	Addr      string `yaml:"addr"`
	CachePath string `yaml:"cache_path"`
}

func Default() Config {
	return Config{
		Site: SiteConfig{
			Title:    "Inkwell",
			Language: "en",
		},
		Content: ContentConfig{
			Dir:       "content",
			Extension: ".md",
		},
		Serve: ServeConfig{
			Addr:      ":8080",
			CachePath: ".inkwell/render.db",
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Site.Title) == "" {
		ve.Add("site.title", "must not be empty")
	}

	if strings.TrimSpace(c.Content.Dir) == "" {
		ve.Add("content.dir", "must not be empty")
	}
	if ext := strings.TrimSpace(c.Content.Extension); ext == "" {
		ve.Add("content.extension", "must not be empty")
	} else if !strings.HasPrefix(ext, ".") {
		ve.Addf("content.extension", "must start with '.', got %q", ext)
	}

	if strings.TrimSpace(c.Serve.Addr) == "" {
		ve.Add("serve.addr", "must not be empty")
	}
	if strings.TrimSpace(c.Serve.CachePath) == "" {
		ve.Add("serve.cache_path", "must not be empty")
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// Unmarshal 直接覆盖在 cfg 上：文件里写到的字段覆盖默认值，其余保留
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadOrDefault behaves like Load, but a missing file is not an error:
// the defaults are used as-is.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil && os.IsNotExist(err) {
		return Default(), nil
	}
	return cfg, err
}
