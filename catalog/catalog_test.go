package catalog

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"vaulticon/parallel"
)

func defaultCmd(out string) *CLICmd {
	return &CLICmd{
		Out:         out,
		Sizes:       DefaultSizes,
		Format:      "png",
		Blend:       "srgb",
		Supersample: 1,
		Manifest:    true,
	}
}

func TestRunGeneratesIconSet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "AppIcon.appiconset")

	cmd := defaultCmd(out)
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := cmd.Run(parallel.Start(1)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, size := range DefaultSizes {
		name := filepath.Join(out, fmt.Sprintf("icon_%dx%d.png", size, size))
		f, err := os.Open(name)
		if err != nil {
			t.Fatalf("missing icon: %v", err)
		}
		conf, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: not a decodable PNG: %v", name, err)
		}
		if conf.Width != size || conf.Height != size {
			t.Errorf("%s: decoded as %dx%d", name, conf.Width, conf.Height)
		}
	}
}

func TestRunWritesManifest(t *testing.T) {
	out := filepath.Join(t.TempDir(), "AppIcon.appiconset")

	if err := defaultCmd(out).Run(parallel.Start(1)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(out, manifestName))
	if err != nil {
		t.Fatalf("missing manifest: %v", err)
	}

	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("manifest does not parse: %v", err)
	}
	if len(m.Images) != 10 {
		t.Errorf("manifest lists %d images, expected 10", len(m.Images))
	}
	for _, img := range m.Images {
		if _, err := os.Stat(filepath.Join(out, img.Filename)); err != nil {
			t.Errorf("manifest references missing file %q", img.Filename)
		}
	}
}

func TestRunSkipsManifest(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icons")

	cmd := defaultCmd(out)
	cmd.Manifest = false
	if err := cmd.Run(parallel.Start(1)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, manifestName)); !os.IsNotExist(err) {
		t.Errorf("manifest written despite --no-manifest (stat err: %v)", err)
	}
}

func TestRunParallel(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icons")

	if err := defaultCmd(out).Run(parallel.Start(4)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	// seven icons plus Contents.json
	if len(entries) != len(DefaultSizes)+1 {
		t.Errorf("found %d entries, expected %d", len(entries), len(DefaultSizes)+1)
	}
}

func TestRunAlternateFormats(t *testing.T) {
	for _, format := range []string{"bmp", "tiff", "gif", "jpeg"} {
		out := filepath.Join(t.TempDir(), format)

		cmd := defaultCmd(out)
		cmd.Format = format
		cmd.Sizes = []int{16, 32}
		if err := cmd.Run(parallel.Start(1)); err != nil {
			t.Fatalf("Run(%s): %v", format, err)
		}

		for _, size := range cmd.Sizes {
			name := filepath.Join(out, fmt.Sprintf("icon_%dx%d.%s", size, size, format))
			if _, err := os.Stat(name); err != nil {
				t.Errorf("missing %s icon: %v", format, err)
			}
		}
		if _, err := os.Stat(filepath.Join(out, manifestName)); !os.IsNotExist(err) {
			t.Errorf("%s: manifest written for a non-png format", format)
		}
	}
}

func TestRunOKLabBlend(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icons")

	cmd := defaultCmd(out)
	cmd.Blend = "oklab"
	cmd.Sizes = []int{64}
	if err := cmd.Run(parallel.Start(1)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "icon_64x64.png")); err != nil {
		t.Errorf("missing icon: %v", err)
	}
}

func TestRunReportsRenderErrors(t *testing.T) {
	cmd := defaultCmd(filepath.Join(t.TempDir(), "icons"))
	cmd.Format = "webp" // no encoder for it
	cmd.Sizes = []int{16}

	if err := cmd.Run(parallel.Start(1)); err == nil {
		t.Error("expected error for unsupported format, got none")
	}
}

func TestRunBadDestination(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := defaultCmd(filepath.Join(blocker, "icons"))
	if err := cmd.Run(parallel.Start(1)); err == nil {
		t.Error("expected error for destination under a regular file, got none")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CLICmd)
	}{
		{"zero size", func(c *CLICmd) { c.Sizes = []int{16, 0} }},
		{"negative size", func(c *CLICmd) { c.Sizes = []int{-64} }},
		{"no sizes", func(c *CLICmd) { c.Sizes = nil }},
		{"bad supersample", func(c *CLICmd) { c.Supersample = 0 }},
	}
	for _, tc := range cases {
		cmd := defaultCmd("icons")
		tc.mutate(cmd)
		if err := cmd.Validate(nil); err == nil {
			t.Errorf("%s: expected validation error, got none", tc.name)
		}
	}
}
