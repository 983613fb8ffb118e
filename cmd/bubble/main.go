// Command bubble displaces a binary STL mesh with the bubble texture and
// writes the result as binary STL.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"bubblemesh/internal/bubble"
	"bubblemesh/internal/stl"
)

func main() {
	in := flag.String("in", "", "input binary STL path")
	out := flag.String("out", "", "output binary STL path")
	height := flag.Float64("height", 0.5, "bubble height in mesh units")
	density := flag.Float64("density", 1.5, "noise lattice scale")
	variance := flag.Float64("variance", 0.4, "bubble height variance")
	passes := flag.Int("passes", 3, "smoothness diffusion passes")
	sharpness := flag.Float64("sharpness", 4.0, "edge attenuation exponent")
	patch := flag.Bool("patch", false, "input is a sub-surface patch of a larger body")
	flag.Parse()

	if *in == "" || *out == "" {
		log.Fatal("both -in and -out are required")
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("opening input: %v", err)
	}
	m, err := stl.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}

	params := bubble.DefaultParams()
	params.Height = *height
	params.Density = *density
	params.Variance = *variance
	params.Passes = *passes
	params.Sharpness = *sharpness
	params.SurfacePatch = *patch

	displaced, err := bubble.Run(m, params)
	if err != nil {
		log.Fatalf("displacing mesh: %v", err)
	}

	o, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating output: %v", err)
	}
	err = bubble.Export(o, displaced)
	if cerr := o.Close(); err == nil && cerr != nil {
		err = &bubble.ExportError{Err: cerr}
	}
	if err != nil {
		var ee *bubble.ExportError
		if errors.As(err, &ee) {
			log.Fatalf("mesh computed but export failed: %v", ee.Err)
		}
		log.Fatalf("writing %s: %v", *out, err)
	}

	log.Printf("displaced %d vertices, %d triangles -> %s",
		m.VertexCount(), m.TriangleCount(), *out)
}
