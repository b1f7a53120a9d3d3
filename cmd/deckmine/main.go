// Command deckmine extracts a normalized XML training document from a
// PowerPoint presentation.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tsawler/deckmine"
	"github.com/tsawler/deckmine/export"
	"github.com/tsawler/deckmine/model"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var workers int
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "deckmine <input.pptx> [output-dir]",
		Short:   "Extract presentation features as XML training data",
		Long: `deckmine decodes a .pptx container into a normalized feature tree
(geometry as canvas fractions, colors as hex/RGB/Lab, content hashes,
per-slide and document statistics) and writes it as a versioned XML
training document.`,
		Version: version,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if err := loadConfig(cfgFile); err != nil {
				return err
			}

			outDir := "output"
			if len(args) == 2 {
				outDir = args[1]
			}
			return run(args[0], outDir, workers)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "concurrent slide extraction workers")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default deckmine.yaml in the working directory)")

	return cmd
}

// loadConfig wires viper: an optional deckmine.yaml plus DECKMINE_*
// environment variables override the built-in thresholds.
func loadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deckmine")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("DECKMINE")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}
	// A missing default config file is fine; an explicit one must load.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
		return nil
	}
	return fmt.Errorf("reading config: %w", err)
}

// thresholds merges viper overrides onto the default configuration.
func thresholds() deckmine.Config {
	cfg := deckmine.DefaultConfig()
	if v := viper.GetFloat64("readability_char_divisor"); v > 0 {
		cfg.ReadabilityCharDivisor = v
	}
	if v := viper.GetInt("color_diversity_cap"); v > 0 {
		cfg.ColorDiversityCap = v
	}
	if v := viper.GetInt("gallery_picture_threshold"); v > 0 {
		cfg.GalleryPictureThreshold = v
	}
	if v := viper.GetInt("top_color_count"); v > 0 {
		cfg.TopColorCount = v
	}
	return cfg
}

func run(inputPath, outDir string, workers int) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input %s: %w", inputPath, err)
	}

	pres, warnings, err := deckmine.Open(inputPath).
		Workers(workers).
		Thresholds(thresholds()).
		Logger(sugar).
		Extract()
	if err != nil {
		return fmt.Errorf("extracting %s: %w", inputPath, err)
	}

	outPath, err := writeDocument(pres, inputPath, outDir)
	if err != nil {
		return err
	}

	sugar.Infow("extraction complete",
		"input", inputPath,
		"output", outPath,
		"slides", pres.Stats.TotalSlides,
		"warnings", warnings,
	)
	if warnings > 0 {
		fmt.Fprintf(os.Stderr, "completed with %d recoverable problem(s)\n", warnings)
	}
	fmt.Println(outPath)
	return nil
}

func writeDocument(pres *model.Presentation, inputPath, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, export.FileName(inputPath))

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := export.Write(pres, f); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}
