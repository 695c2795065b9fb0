// sketchdata indexes directories of images the same way the training pipeline does, prints a summary
// and, with -verify, decodes every image to find broken files before a long training run.
//
// Usage:
//
//	sketchdata -roots=~/work/sketches/cars,~/work/sketches/boats -ext=png -verify
//
// Configuration can also be given with SKETCHDATA_* environment variables or a .env file (path set by
// SKETCHDATA_ENV_FILE), see Config.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/janpfeifer/must"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	envFile := os.Getenv(EnvPrefix + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	cfg := must.M1(LoadConfig(envFile))
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	cfg.Roots = append(cfg.Roots, flag.Args()...)
	if err := cfg.Validate(); err != nil {
		klog.Errorf("Invalid configuration: %v. See 'sketchdata -help'.", err)
		os.Exit(1)
	}

	ds, err := cfg.FolderConfig().Done()
	if err != nil {
		klog.Errorf("Failed to index images: %+v", err)
		os.Exit(1)
	}
	printSummary(must.M1(summarize(cfg.Roots, ds)))
	if !cfg.Verify {
		return
	}

	bar := progressbar.Default(int64(ds.Len()), "decoding")
	failures := verifyDataset(ds, cfg.Parallelism, bar)
	_ = bar.Finish()
	if len(failures) > 0 {
		for _, err := range failures {
			klog.Errorf("%v", err)
		}
		klog.Errorf("%d out of %d images failed to decode", len(failures), ds.Len())
		os.Exit(1)
	}
	fmt.Printf("All %d images decoded successfully.\n", ds.Len())
}
