package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testConf struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type validatedConf struct {
	Port int `yaml:"port"`
}

func (c *validatedConf) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_CONF_NAME", "from-env")
	path := writeConf(t, "name: ${TEST_CONF_NAME}\nport: 8080\n")

	var c testConf
	if err := Load(path, &c); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Name != "from-env" || c.Port != 8080 {
		t.Errorf("conf = %+v", c)
	}
}

func TestLoadRunsValidator(t *testing.T) {
	path := writeConf(t, "port: 0\n")

	var c validatedConf
	if err := Load(path, &c); err == nil {
		t.Error("invalid config should fail validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	var c testConf
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &c); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoadOptionalMissingFileKeepsDefaults(t *testing.T) {
	c := validatedConf{Port: 8080}
	if err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &c); err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if c.Port != 8080 {
		t.Errorf("defaults touched: %+v", c)
	}
}

func TestLoadOptionalValidatesDefaults(t *testing.T) {
	var c validatedConf // zero port
	if err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &c); err == nil {
		t.Error("invalid defaults should fail validation")
	}
}
