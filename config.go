package aoc

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// config is read once from ~/.config/aoc/config.yaml. All fields are
// optional; see session and cacheDir for the fallbacks.
type config struct {
	// Session is the adventofcode.com session cookie value.
	Session string `yaml:"session"`
	// Cache is the directory inputs and descriptions are cached
	// under, one subdirectory per year. Defaults to the working
	// directory.
	Cache string `yaml:"cache"`
}

var loadConfig = sync.OnceValue(func() config {
	var cfg config
	path := filepath.Join(MustGet(os.UserHomeDir()), ".config", "aoc", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg
		}
		log.Fatalf("reading %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("parsing %s: %v", path, err)
	}
	return cfg
})

var session = sync.OnceValue(func() string {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return s
	}
	if s := loadConfig().Session; s != "" {
		return s
	}
	// Legacy location.
	keyFile := filepath.Join(MustGet(os.UserHomeDir()), "keys", "aoc.session")
	if b, err := os.ReadFile(keyFile); err == nil {
		return strings.TrimSpace(string(b))
	}
	log.Fatalf("no session token: set AOC_SESSION, or session: in ~/.config/aoc/config.yaml")
	return ""
})

func cacheDir() string {
	if d := loadConfig().Cache; d != "" {
		return d
	}
	return "."
}
