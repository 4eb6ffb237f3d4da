package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
)

var appLogger *logger.Logger

func main() {
	width := flag.Int("width", config.Envs.MazeWidth, "maze width, odd and at least 3")
	height := flag.Int("height", config.Envs.MazeHeight, "maze height, odd and at least 3")
	seed := flag.Int64("seed", 0, "random seed; 0 uses MAZE_SEED or the clock")
	output := flag.String("out", config.Envs.OutputPath, "output image (.png, .bmp or .tiff)")
	debug := flag.Bool("debug", config.Envs.LogDebug, "log every random walk")
	flag.Parse()

	var err error
	appLogger, err = logger.New("MAZE", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}
	appLogger.SetDebug(*debug)

	s := time.Now().UnixNano()
	switch {
	case *seed != 0:
		s = *seed
	case config.Envs.MazeSeed != nil:
		s = *config.Envs.MazeSeed
	}
	appLogger.Info(fmt.Sprintf("Using seed %d", s))

	m, err := maze.NewWithOptions(*width, *height, &maze.Options{
		Rand:   rand.New(rand.NewSource(s)),
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Starting image generation")
	if err := render.Save(*output, m); err != nil {
		appLogger.Error(fmt.Sprintf("Saving %s: %v", *output, err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Image generation complete: %s", *output))
}
