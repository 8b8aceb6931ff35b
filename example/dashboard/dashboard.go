package main

import (
	"flag"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/swdee/go-annodash"
	"github.com/swdee/go-annodash/annotation"
	"github.com/swdee/go-annodash/config"
	"github.com/swdee/go-annodash/dashboard"
	"github.com/swdee/go-annodash/dataset"
	"github.com/swdee/go-annodash/plot"
	"log"
	"log/slog"
	"os"
	"strings"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	configFile := flag.String("c", "dashboard.json", "JSON configuration file")
	recordsFile := flag.String("r", "", "JSON file of annotated records, overrides the configuration")
	classesFile := flag.String("l", "", "Text file containing class labels, one per line")
	imageDir := flag.String("i", "", "Directory record image paths are relative to")
	outDir := flag.String("o", "", "Directory the figures are written to")
	classes := flag.String("s", "", "Comma separated class labels to select, empty selects all")
	masks := flag.Bool("masks", false, "Draw segmentation masks")
	keypoints := flag.Bool("keypoints", false, "Draw keypoints")
	saveConfig := flag.Bool("save", false, "Save the effective configuration to the configuration file")

	flag.Parse()

	cfg, err := config.Load(*configFile)

	if err != nil {
		log.Printf("Configuration file %s: %v", *configFile, err)
	}

	overrideConfig(cfg, *recordsFile, *classesFile, *imageDir, *outDir)

	if *masks {
		cfg.DisplayMask = true
	}

	if *keypoints {
		cfg.DisplayKeyPoints = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	if *saveConfig {
		if err := cfg.Save(*configFile); err != nil {
			log.Fatal("Error saving configuration: ", err)
		}
	}

	level := slog.LevelInfo

	if cfg.Debug {
		level = slog.LevelDebug
	}

	logger := NewLogger(level)

	ds, err := loadDataset(cfg)

	if err != nil {
		log.Fatal("Error loading dataset: ", err)
	}

	backend, err := plot.NewPNGBackend(cfg.OutputDir, logger)

	if err != nil {
		log.Fatal("Error creating figure backend: ", err)
	}

	recOpts := plot.DefaultRecordOptions()
	recOpts.ImageDir = cfg.ImageDir
	recOpts.Width = cfg.FigureWidth
	recOpts.Height = cfg.FigureHeight
	recOpts.DisplayLabel = cfg.DisplayLabel
	recOpts.DisplayBBox = cfg.DisplayBBox
	recOpts.DisplayMask = cfg.DisplayMask
	recOpts.DisplayKeyPoints = cfg.DisplayKeyPoints
	recOpts.LineThickness = cfg.LineThickness
	recOpts.MaskAlpha = cfg.MaskAlpha

	gallery := dashboard.NewGalleryPanel(backend, recOpts, cfg.ThumbnailSize,
		cfg.GalleryLimit, logger)

	dash := dashboard.New(ds, logger,
		dashboard.NewSummaryPanel(os.Stdout),
		dashboard.NewMixingPanel(backend, cfg.HeatmapCellSize, logger),
		gallery,
	)

	labels := splitLabels(*classes)

	// the progress bar is sized for the view the gallery is about to draw
	bar := progressbar.Default(int64(len(gallery.Records(viewFor(ds, labels)))),
		"Rendering gallery")

	gallery.OnRecord = func(rec annotation.Record) {
		bar.Add(1)
	}

	if len(labels) == 0 {
		err = dash.Refresh()
	} else {
		// the selection listener refreshes every panel
		err = dash.Selection.Extend(labels...)
	}

	bar.Finish()

	if err != nil {
		log.Fatal("Error refreshing dashboard: ", err)
	}

	// show the first record of the view at full size
	if recs := dash.View().Records(); len(recs) > 0 {

		fig, err := plot.DrawRecord(recs[0], ds.Classes(), recOpts)

		if err != nil {
			log.Fatal("Error drawing record: ", err)
		}

		if err := backend.Show(fig); err != nil {
			log.Fatal("Error showing record: ", err)
		}
	}

	log.Printf("Figures written to %s\n", cfg.OutputDir)
}

// overrideConfig replaces configuration values by the non empty flags
func overrideConfig(cfg *config.Config, recordsFile, classesFile, imageDir, outDir string) {

	if recordsFile != "" {
		cfg.RecordsFile = recordsFile
	}

	if classesFile != "" {
		cfg.ClassesFile = classesFile
	}

	if imageDir != "" {
		cfg.ImageDir = imageDir
	}

	if outDir != "" {
		cfg.OutputDir = outDir
	}
}

// loadDataset reads the class labels and records named by cfg
func loadDataset(cfg *config.Config) (*annodash.DetectionDataset, error) {

	classes := annotation.NewClassMap()

	if cfg.ClassesFile != "" {

		var err error
		classes, err = annotation.LoadClassMap(cfg.ClassesFile)

		if err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(cfg.RecordsFile)

	if err != nil {
		return nil, err
	}

	records, err := annotation.LoadRecords(cfg.RecordsFile, classes)

	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %s records (%s) with %d classes from %s\n",
		humanize.Comma(int64(len(records))), humanize.Bytes(uint64(info.Size())),
		classes.Len(), cfg.RecordsFile)

	opts := []dataset.Option{}

	if cfg.Name != "" {
		opts = append(opts, dataset.WithName(cfg.Name))
	}

	if cfg.Description != "" {
		opts = append(opts, dataset.WithDescription(cfg.Description))
	}

	return annodash.NewDetectionDataset(records, classes, opts...), nil
}

// splitLabels splits a comma separated list of labels
func splitLabels(s string) []string {

	var labels []string

	for _, label := range strings.Split(s, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}

	return labels
}

// viewFor returns the dataset the dashboard shows for labels
func viewFor(ds *annodash.DetectionDataset, labels []string) *annodash.DetectionDataset {

	if len(labels) == 0 {
		return ds
	}

	return ds.Filter(labels)
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags]\n\nRenders summary statistics, the class mixing heatmap and a gallery of an annotated dataset.\n\n",
			os.Args[0])
		flag.PrintDefaults()
	}
}
