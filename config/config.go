package config

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
)

// Config holds runtime configuration of the dashboard.  Fields may be loaded
// from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Data sources
	RecordsFile string `json:"records_file"`
	ClassesFile string `json:"classes_file"`
	ImageDir    string `json:"image_dir"`
	OutputDir   string `json:"output_dir"`

	// Dataset display metadata
	Name        string `json:"name"`
	Description string `json:"description"`

	// Record drawing
	DisplayLabel     bool    `json:"display_label"`
	DisplayBBox      bool    `json:"display_bbox"`
	DisplayMask      bool    `json:"display_mask"`
	DisplayKeyPoints bool    `json:"display_keypoints"`
	LineThickness    int     `json:"line_thickness"`
	MaskAlpha        float64 `json:"mask_alpha"`
	FigureWidth      int     `json:"figure_width"`
	FigureHeight     int     `json:"figure_height"`

	// Panels
	HeatmapCellSize int `json:"heatmap_cell_size"`
	ThumbnailSize   int `json:"thumbnail_size"`
	GalleryLimit    int `json:"gallery_limit"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		RecordsFile:      "records.json",
		ClassesFile:      "",
		ImageDir:         ".",
		OutputDir:        "figures",
		DisplayLabel:     true,
		DisplayBBox:      true,
		DisplayMask:      false,
		DisplayKeyPoints: false,
		LineThickness:    2,
		MaskAlpha:        0.5,
		FigureWidth:      0,
		FigureHeight:     0,
		HeatmapCellSize:  48,
		ThumbnailSize:    160,
		GalleryLimit:     16,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.LineThickness <= 0 {
		c.LineThickness = 2
	}
	if c.MaskAlpha < 0 || c.MaskAlpha > 1 {
		c.MaskAlpha = 0.5
	}
	if c.FigureWidth < 0 {
		c.FigureWidth = 0
	}
	if c.FigureHeight < 0 {
		c.FigureHeight = 0
	}
	if c.HeatmapCellSize <= 0 {
		c.HeatmapCellSize = 48
	}
	if c.ThumbnailSize <= 0 {
		c.ThumbnailSize = 160
	}
	if c.GalleryLimit < 0 {
		c.GalleryLimit = 0
	}
	if c.RecordsFile == "" {
		return errors.New("records_file must be set")
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// A decoded config failing Validate is returned clamped, together with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "error opening config")
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), errors.Wrap(err, "error decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format. An invalid
// configuration is not written.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "error creating config")
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
