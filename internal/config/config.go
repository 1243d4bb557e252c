package config

import (
	"gopkg.in/yaml.v3"
	"os"
)


type Lang struct {
	Name     string `yaml:"name,omitempty"`
	Comment  string `yaml:"comment,omitempty"`
	TabWidth int    `yaml:"tabwidth,omitempty"`
}

type Config struct {
	Langs    map[string]Lang `yaml:"langs"`
	Theme    string          `yaml:"theme"`
	Colorize bool            `yaml:"colorize"`
}

var DefaultConfig = Config { Langs:
	map[string]Lang{
		"go":     { TabWidth: 4 },
		"python": { Comment: "#", TabWidth: 4 },
		"rust":   { TabWidth: 4 },
		"yaml":   { Comment: "#", TabWidth: 4 },
		"bash":   { Comment: "#", TabWidth: 2 },
		"lua":    { Comment: "--" },
	},
}

var DefaultLangConfig = Lang{ Name: "", Comment: "//", TabWidth: 2 }

// GetConfig reads the yaml file named by EDLOG_CONF (config.yaml by
// default) and merges it over the defaults. A missing or broken file
// means defaults.
func GetConfig() Config {

	for langName, langConf := range DefaultConfig.Langs {
		if langConf.TabWidth == 0 { langConf.TabWidth = 2 }
		if langConf.Comment == "" { langConf.Comment = "//" }
		DefaultConfig.Langs[langName] = langConf
	}

	DefaultConfig.Theme = "monokai"
	DefaultConfig.Colorize = true

	conffilename, exists := os.LookupEnv("EDLOG_CONF")
	if !exists { conffilename = "config.yaml" }

	data, err := os.ReadFile(conffilename)
	if err != nil { return DefaultConfig }

	yamlConfig := Config{ Colorize: true }
	err = yaml.Unmarshal(data, &yamlConfig)
	if err != nil { return DefaultConfig }
	DefaultConfig.Colorize = yamlConfig.Colorize

	for langName, langConf := range yamlConfig.Langs {
		if langConf.TabWidth == 0 { langConf.TabWidth = 2 }
		if langConf.Comment == "" { langConf.Comment = "//" }
		DefaultConfig.Langs[langName] = langConf
	}

	if yamlConfig.Theme != "" { DefaultConfig.Theme = yamlConfig.Theme }

	return DefaultConfig
}
