package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const manifestName = "Contents.json"

type manifestImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type manifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type manifest struct {
	Images []manifestImage `json:"images"`
	Info   manifestInfo    `json:"info"`
}

// writeManifest emits the Contents.json an .appiconset expects, listing each
// rendered pixel size under the mac idiom point sizes it can serve (a 64 px
// file is both 32pt@2x; 1024 px is 512pt@2x). Entries whose pixel size was
// not rendered are left out.
func writeManifest(destDir string, sizes []int) (err error) {
	rendered := make(map[int]bool, len(sizes))
	for _, size := range sizes {
		rendered[size] = true
	}

	var m manifest
	for _, points := range []int{16, 32, 128, 256, 512} {
		for _, scale := range []int{1, 2} {
			px := points * scale
			if !rendered[px] {
				continue
			}
			m.Images = append(m.Images, manifestImage{
				Filename: fmt.Sprintf("icon_%dx%d.png", px, px),
				Idiom:    "mac",
				Scale:    fmt.Sprintf("%dx", scale),
				Size:     fmt.Sprintf("%dx%d", points, points),
			})
		}
	}
	m.Info = manifestInfo{Author: "vaulticon", Version: 1}

	outFile, err := os.CreateTemp(destDir, manifestName)
	if err != nil {
		return fmt.Errorf("could not create temporary manifest: %w", err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Close(); defErr != nil {
			err = fmt.Errorf("could not close temporary manifest: %w", defErr)
		}
		if canRename && (err == nil) {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, manifestName)); defErr != nil {
				err = fmt.Errorf("could not rename manifest: %w", defErr)
			}
		} else {
			if defErr := os.Remove(outFile.Name()); defErr != nil {
				err = fmt.Errorf("could not remove temporary manifest: %w", defErr)
			}
		}
	}()

	enc := json.NewEncoder(outFile)
	enc.SetIndent("", "  ")
	if err = enc.Encode(m); err != nil {
		return fmt.Errorf("could not encode manifest: %w", err)
	}

	canRename = true
	return err
}
