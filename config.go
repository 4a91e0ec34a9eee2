package main

import (
	"errors"
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/DSU-DefSec/harmony-viewer/harmony"
)

const (
	defaultTitle        = "Color Harmony Viewer"
	defaultColor        = "#3366cc"
	defaultPort         = 8080
	defaultDatabase     = "harmony.db"
	defaultHistoryLimit = 20
)

type config struct {
	Title         string
	Port          int
	DefaultColor  string
	Verbose       bool
	History       bool
	Database      string
	HistoryLimit  int
	SessionSecret string
}

// readConfig decodes the TOML file at path into conf. A missing file leaves
// conf untouched so that checkConfig fills in every default.
func readConfig(conf *config, path string) error {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Println("Configuration file (" + path + ") not found, using defaults")
			return nil
		}
		return err
	}
	if _, err := toml.Decode(string(fileContent), conf); err != nil {
		return err
	}
	return nil
}

func checkConfig(conf *config) error {
	if conf.Title == "" {
		conf.Title = defaultTitle
	}

	if conf.Port == 0 {
		conf.Port = defaultPort
	}

	if conf.Port < 0 || conf.Port > 65535 {
		return errors.New("illegal config: port out of range")
	}

	if conf.DefaultColor == "" {
		conf.DefaultColor = defaultColor
	}

	color, err := harmony.Resolve(conf.DefaultColor)
	if err != nil {
		return errors.New("illegal config: invalid default color: " + conf.DefaultColor)
	}
	conf.DefaultColor = color

	if conf.Database == "" {
		conf.Database = defaultDatabase
	}

	if conf.HistoryLimit == 0 {
		conf.HistoryLimit = defaultHistoryLimit
	}

	if conf.HistoryLimit < 0 {
		return errors.New("illegal config: historylimit must not be negative")
	}

	if conf.SessionSecret != "" && len(conf.SessionSecret) < 16 {
		return errors.New("illegal config: sessionsecret shorter than 16 characters")
	}

	return nil
}
