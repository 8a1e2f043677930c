package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"texatlas/atlas"
	"texatlas/internal/config"
	"texatlas/internal/imgio"
	"texatlas/internal/manifest"
)

// imageExts are the source extensions atlasgen picks up while scanning.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".tga":  true,
	".webp": true,
}

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("input", "", "Directory scanned for source images (default: current directory)")
	outputDir := flag.String("output", "", "Output directory (default: input directory)")
	format := flag.String("format", "", "Atlas image format, png or webp (default: png)")
	maxSize := flag.Int("max", 0, "Maximum atlas side length in pixels (default: 16384)")
	workers := flag.Int("workers", 0, "Number of decode goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Log packing attempts to stderr")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Format:    *format,
		MaxSize:   *maxSize,
		Workers:   *workers,
		Verbose:   *verbose,
	})

	if cfg.Format != "png" && cfg.Format != "webp" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want png or webp)\n", cfg.Format)
		os.Exit(1)
	}

	imagePath := filepath.Join(cfg.OutputDir, "atlas."+cfg.Format)
	manifestPath := filepath.Join(cfg.OutputDir, "atlas.json")

	sources, err := scanSources(cfg.InputDir, imagePath, manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", cfg.InputDir, err)
		os.Exit(1)
	}
	if len(sources) == 0 {
		fmt.Println("No images to pack.")
		os.Exit(0)
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fmt.Printf("texatlas → %s\n", imagePath)
	fmt.Printf("Images: %d, Workers: %d, Max size: %d\n", len(sources), cfg.Workers, cfg.MaxSize)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	bar := progressbar.New(len(sources))
	res, err := atlas.Build(sources,
		atlas.WithLoader(&progressLoader{cache: imgio.NewCache(), bar: bar}),
		atlas.WithLogger(logger),
		atlas.WithMaxSize(cfg.MaxSize),
		atlas.WithWorkers(cfg.Workers),
	)
	bar.Finish()
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Packed %d textures into %dx%d in %.1fs\n",
		len(res.Bounds), res.Width, res.Height, elapsed.Seconds())

	// Write atlas image + manifest
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Format == "webp" {
		err = imgio.WriteWebP(imagePath, res.Image())
	} else {
		err = imgio.WritePNG(imagePath, res.Image())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Atlas: %s\n", imagePath)

	m := manifest.Build(filepath.Base(imagePath), res, sources)
	if err := manifest.Write(manifestPath, m); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}
}

// scanSources walks dir for source images and keys each file by its
// slash-normalized path relative to dir. Outputs of a previous run sitting
// inside the scan tree are skipped.
func scanSources(dir, imagePath, manifestPath string) (map[string]string, error) {
	skip := map[string]bool{
		filepath.Clean(imagePath):    true,
		filepath.Clean(manifestPath): true,
	}

	sources := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || skip[filepath.Clean(path)] {
			return nil
		}
		if !imageExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		sources[filepath.ToSlash(rel)] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// progressLoader ticks the bar once per decoded source.
type progressLoader struct {
	cache *imgio.Cache
	bar   *progressbar.ProgressBar
}

func (p *progressLoader) Load(path string) (*image.NRGBA, error) {
	defer p.bar.Add(1)
	return p.cache.Load(path)
}
