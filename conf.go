package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var conf *Conf

type Conf struct {
	App struct {
		Version string `toml:"version"`
		Title   string `toml:"title"`
	} `toml:"app"`
	Output struct {
		LogDir         string `toml:"logDir"`
		OutputTerminal bool   `toml:"outputTerminal"`
	} `toml:"output"`
	Task struct {
		ShardDir string `toml:"shardDir"`
	} `toml:"task"`
	Render struct {
		Width      int     `toml:"width"`
		Height     int     `toml:"height"`
		PixelRatio float64 `toml:"pixelRatio"`
		Timeout    int     `toml:"timeout"`
	} `toml:"render"`
}

// InitConf loads the optional config file and fills in defaults. The run
// parameters themselves come from flags; the config file only carries the
// ambient knobs.
func InitConf(cfgFile string) {
	viper.SetConfigType("toml")
	viper.AutomaticEnv() // read in environment variables that match
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err == nil {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				// the logger is not up yet at this point
				fmt.Fprintf(os.Stderr, "read config file(%s) error, details: %s\n", viper.ConfigFileUsed(), err)
			}
		}
	}

	viper.SetDefault("app.version", "v 0.1.0")
	viper.SetDefault("app.title", "rastertiler")
	viper.SetDefault("output.outputTerminal", true)
	viper.SetDefault("task.shardDir", os.TempDir())
	viper.SetDefault("render.width", TileSize)
	viper.SetDefault("render.height", TileSize)
	viper.SetDefault("render.pixelRatio", 1.0)
	viper.SetDefault("render.timeout", 30)

	if err := viper.Unmarshal(&conf); err != nil {
		panic("unable to parse config file")
	}
}
