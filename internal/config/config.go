// Package config resolves peoplegen settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/zarlcorp/peoplegen/internal/corpus"
)

// Environment variables read by peoplegen.
const (
	EnvMaleFirstNames   = "PEOPLEGEN_MALE_FIRST_NAMES"
	EnvFemaleFirstNames = "PEOPLEGEN_FEMALE_FIRST_NAMES"
	EnvLastNames        = "PEOPLEGEN_LAST_NAMES"
	EnvArchivePassword  = "PEOPLEGEN_ARCHIVE_PASSWORD"
	EnvDataDir          = "PEOPLEGEN_DATA_DIR"
)

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are named. Missing files are ignored; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// CorpusPaths fills any empty path in p from the environment.
func CorpusPaths(p corpus.Paths) corpus.Paths {
	if p.Male == "" {
		p.Male = os.Getenv(EnvMaleFirstNames)
	}
	if p.Female == "" {
		p.Female = os.Getenv(EnvFemaleFirstNames)
	}
	if p.Last == "" {
		p.Last = os.Getenv(EnvLastNames)
	}
	return p
}

// CheckCorpusPaths reports the first corpus path that is still empty.
func CheckCorpusPaths(p corpus.Paths) error {
	switch {
	case p.Male == "":
		return fmt.Errorf("male first names file not specified, and %s not set", EnvMaleFirstNames)
	case p.Female == "":
		return fmt.Errorf("female first names file not specified, and %s not set", EnvFemaleFirstNames)
	case p.Last == "":
		return fmt.Errorf("last names file not specified, and %s not set", EnvLastNames)
	}
	return nil
}

// DataDir returns the directory of the run archive.
func DataDir() string {
	if d := os.Getenv(EnvDataDir); d != "" {
		return d
	}
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "peoplegen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".peoplegen"
	}
	return filepath.Join(home, ".local", "share", "peoplegen")
}
