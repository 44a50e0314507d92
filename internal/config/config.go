package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/n/internal/pm"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// EnvPath는 설정 파일 경로를 덮어쓰는 환경변수다.
const EnvPath = "N_CONFIG"

// Config는 n 설정 파일의 최상위 구조체다.
type Config struct {
	Version int `toml:"version"`
	// DefaultManager가 설정되면 lock 파일이 없을 때 선택 프롬프트 없이 이 매니저를 사용한다.
	DefaultManager string            `toml:"default_manager"`
	Echo           *bool             `toml:"echo"`
	Env            map[string]string `toml:"env"`
}

// Default는 설정 파일이 없을 때의 기본 설정이다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath는 N_CONFIG 또는 ~/.config/n/config.toml을 반환한다.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "n", "config.toml")
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsEcho는 실행 명령을 출력할지 여부를 반환한다.
func (c *Config) IsEcho() bool {
	if c.Echo == nil {
		return true
	}
	return *c.Echo
}

// Manager는 default_manager를 파싱한다. 설정되지 않았으면 false를 반환한다.
func (c *Config) Manager() (pm.Manager, bool) {
	if c.DefaultManager == "" {
		return "", false
	}
	m, err := pm.Parse(c.DefaultManager)
	if err != nil {
		return "", false
	}
	return m, true
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Echo == nil {
		t := true
		c.Echo = &t
	}
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if c.DefaultManager != "" {
		if _, err := pm.Parse(c.DefaultManager); err != nil {
			return fmt.Errorf("config.Load: %w: default_manager %q", ErrConfig, c.DefaultManager)
		}
	}
	return nil
}
