package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
)

var (
	hf         bool
	configPath string
	logLevel   string

	styleURL   string
	maxZoom    int
	numWorkers int
	outputPath string
	imgFormat  string

	// set only on spawned worker processes
	workerID  int
	shardPath string
)

func InitFlag() {
	flag.BoolVar(&hf, "h", false, "this help")
	flag.StringVar(&configPath, "c", "./conf/conf.toml", "set config `file`")
	flag.StringVar(&logLevel, "l", "info", "set log level (default: info)")
	flag.StringVar(&styleURL, "s", "", "style `url` to render")
	flag.IntVar(&maxZoom, "z", 5, "maximum zoom level")
	flag.IntVar(&numWorkers, "p", runtime.NumCPU(), "number of render worker processes")
	flag.StringVar(&outputPath, "o", "./tiles.mbtiles", "output mbtiles `file`")
	flag.StringVar(&imgFormat, "f", WEBP, "image format: webp, jpg or png")
	flag.IntVar(&workerID, "worker-id", -1, "internal: run as render worker")
	flag.StringVar(&shardPath, "shard", "", "internal: worker shard file")
	flag.Usage = usage
	flag.Parse()

	if hf {
		flag.Usage()
		os.Exit(0)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `rastertiler version: rastertiler/v0.1.0
Usage: rastertiler -s style [-z maxZoom] [-p workers] [-o output] [-f format] [-c filename] [-l logLevel]
`)
	flag.PrintDefaults()
}
