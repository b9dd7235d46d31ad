package main

import (
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/pixelgen/internal/pixelgen"
)

func main() {
	pixelgen.Debug = os.Getenv("DEBUG") != ""
	pixelgen.RAW = os.Getenv("RAW") != ""
	pixelgen.PNG16 = os.Getenv("PNG16") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "jobs/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := pixelgen.Run(cfg); err != nil {
		pixelgen.Logger.Error("Run failed", "config", cfg, "error", err)
		os.Exit(1)
	}
}
