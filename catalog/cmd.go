// Package catalog renders the padlock icon set into an app icon asset
// catalog directory.
package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"vaulticon/icon"
	"vaulticon/parallel"

	"github.com/alecthomas/kong"
)

// DefaultSizes are the catalog sizes, smallest to largest.
var DefaultSizes = []int{16, 32, 64, 128, 256, 512, 1024}

type CLICmd struct {
	Out         string `help:"Destination icon set folder" default:"SecretVault/Assets.xcassets/AppIcon.appiconset"`
	Sizes       []int  `help:"Icon sizes to render, in pixels" default:"16,32,64,128,256,512,1024"`
	Format      string `help:"Output image format" enum:"png,gif,jpeg,bmp,tiff" default:"png"`
	Blend       string `help:"Gradient blend colorspace" enum:"srgb,oklab" default:"srgb"`
	Supersample int    `help:"Render at this multiple of the target size and downscale" default:"1"`
	Manifest    bool   `help:"Write a Contents.json manifest next to the icons" default:"true" negatable:""`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Out, err)
	}
	c.Out = out

	if len(c.Sizes) == 0 {
		return fmt.Errorf("no icon sizes given")
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("invalid icon size: %d", size)
		}
	}

	if c.Supersample < 1 {
		return fmt.Errorf("invalid supersample factor: %d", c.Supersample)
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Out, err)
	}

	params := icon.DefaultParams()
	params.Blend = icon.BlendMode(c.Blend)
	params.Supersample = c.Supersample

	var writtenCount, errCount atomic.Uint64
	for _, size := range c.Sizes {
		size := size
		pool.Submit(func() {
			name := fmt.Sprintf("icon_%dx%d.%s", size, size, c.Format)
			logger := slog.Default().With("file", filepath.Join(c.Out, name))

			img, err := params.Render(size)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not render icon", "error", err)
				return
			}

			if err := save(img, c.Format, c.Out, name); err != nil {
				errCount.Add(1)
				logger.Error("could not save icon", "error", err)
				return
			}

			writtenCount.Add(1)
			logger.Info("created icon", "size", size)
		})
	}
	pool.Drain()

	if c.Manifest && c.Format == "png" {
		if err := writeManifest(c.Out, c.Sizes); err != nil {
			return fmt.Errorf("could not write manifest: %w", err)
		}
		slog.Info("created manifest", "file", filepath.Join(c.Out, manifestName))
	}

	written := writtenCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "written", written, "errors", errors, "total", written+errors)

	if errors > 0 {
		return fmt.Errorf("error rendering %d icons", errors)
	}
	return nil
}
