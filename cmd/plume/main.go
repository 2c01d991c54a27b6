// Package main provides the plume command: it stages a declarative scene
// document and prints the resolved geometry, optionally rendering it to a
// PNG or running a hit-test query against it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-plume/plume/pkg/errors"
	"github.com/go-plume/plume/pkg/geometry"
	"github.com/go-plume/plume/pkg/hittest"
	"github.com/go-plume/plume/pkg/layout"
	"github.com/go-plume/plume/pkg/raster"
	"github.com/go-plume/plume/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "path to a scene YAML document (required)")
	outPath := flag.String("out", "", "render the first surface to this PNG file")
	at := flag.String("at", "", "hit-test point on the first surface, as x,y")
	scale := flag.Float64("scale", 1, "pixels per surface unit when rendering")
	verbose := flag.Bool("v", false, "verbose error output with stack traces")
	flag.Parse()

	errors.SetHandler(&errors.LogHandler{Verbose: *verbose})

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "usage: plume -scene layout.yaml [-out tree.png] [-at x,y]")
		os.Exit(2)
	}

	if err := run(*scenePath, *outPath, *at, *scale); err != nil {
		os.Exit(1)
	}
}

func run(scenePath, outPath, at string, scale float64) error {
	doc, err := scene.Load(scenePath)
	if err != nil {
		errors.Report(&errors.PlumeError{Op: "plume.load", Kind: errors.KindParsing, Path: scenePath, Err: err})
		return err
	}
	surfaces, err := doc.Build()
	if err != nil {
		errors.Report(&errors.PlumeError{Op: "plume.build", Kind: errors.KindParsing, Path: scenePath, Err: err})
		return err
	}

	for i, surface := range surfaces {
		staged, err := surface.Stage()
		if err != nil {
			errors.Report(&errors.PlumeError{Op: "plume.stage", Kind: errors.KindLayout, Path: scenePath, Err: err})
			return err
		}

		fmt.Printf("surface %s %s\n", surface.Name, formatRect(surface.Area))
		printTree(staged, 1)

		if i != 0 {
			continue
		}
		if outPath != "" {
			img := raster.Render(staged, surface.Area, raster.Options{Scale: scale})
			if err := raster.WritePNG(outPath, img); err != nil {
				errors.Report(&errors.PlumeError{Op: "plume.render", Kind: errors.KindRender, Err: err})
				return err
			}
			fmt.Printf("wrote %s\n", outPath)
		}
		if at != "" {
			point, err := parsePoint(at)
			if err != nil {
				errors.Report(&errors.PlumeError{Op: "plume.hittest", Kind: errors.KindParsing, Err: err})
				return err
			}
			var idx hittest.RTree
			hittest.InsertTree(&idx, staged)
			for _, hit := range idx.At(point) {
				fmt.Printf("hit %s %s\n", nodeLabel(hit), formatRect(hit.Bounds()))
			}
		}
	}
	return nil
}

// printTree writes one line per staged node, indented by depth.
func printTree(s layout.Staged, depth int) {
	if s == nil {
		return
	}
	fmt.Printf("%s%s %s\n", strings.Repeat("  ", depth), nodeLabel(s), formatRect(s.Bounds()))
	for _, child := range s.Children() {
		printTree(child, depth+1)
	}
}

func nodeLabel(s layout.Staged) string {
	if tagged, ok := s.(layout.Tagged); ok && tagged.Tag() != "" {
		return tagged.Tag()
	}
	return "(untagged)"
}

func formatRect(r geometry.Rect) string {
	return fmt.Sprintf("[%.1f %.1f %.1f %.1f]", r.Left, r.Top, r.Width(), r.Height())
}

// parsePoint reads an "x,y" pair.
func parsePoint(s string) (geometry.Offset, error) {
	var p geometry.Offset
	if _, err := fmt.Sscanf(s, "%f,%f", &p.X, &p.Y); err != nil {
		return geometry.Offset{}, fmt.Errorf("invalid point %q (want x,y): %w", s, err)
	}
	return p, nil
}
