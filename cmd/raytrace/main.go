// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command raytrace renders a named scene preset to a PNG file. It is the
// external CLI surface spec.md section 6 requires: output path,
// resolution, AA mode, perspective on/off with pinhole distance, max
// bounces, worker count, and a scene selector, plus an optional
// --profile YAML file applied before the flags (flags win).
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/galvanized/raytrace/internal/presets"
	"github.com/galvanized/raytrace/math3d"
	"github.com/galvanized/raytrace/render"
	"github.com/galvanized/raytrace/scene"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(log); err != nil {
		log.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	var (
		out         = flag.String("out", "render", "output file basename (without extension)")
		sceneName   = flag.String("scene", "shading", "scene preset name")
		profilePath = flag.String("profile", "", "optional YAML render profile, applied before flags")
		width       = flag.Int("width", 0, "render width in pixels (0 = profile/default)")
		height      = flag.Int("height", 0, "render height in pixels (0 = profile/default)")
		perspective = flag.Bool("perspective", false, "use perspective projection instead of orthographic")
		pinhole     = flag.Float64("pinhole", 0, "pinhole distance for perspective projection (0 = default)")
		aaMode      = flag.String("aa", "", "anti-aliasing mode: none, supersample4x, adaptive_x, adaptive_o")
		bounces     = flag.Int("bounces", 0, "max recursion bounces (0 = profile/default)")
		workers     = flag.Int("workers", 0, "worker goroutine count (0 = profile/default)")
		bands       = flag.Int("bands", 0, "row band count (0 = profile/default)")
	)
	flag.Parse()

	start := time.Now()

	sc, cam, sky, err := presets.Build(*sceneName)
	if err != nil {
		return fmt.Errorf("raytrace: %w", err)
	}

	var opts []render.Opt
	if *profilePath != "" {
		p, err := render.LoadProfile(*profilePath)
		if err != nil {
			return fmt.Errorf("raytrace: %w", err)
		}
		profileOpts, err := p.Opts()
		if err != nil {
			return fmt.Errorf("raytrace: %w", err)
		}
		opts = append(opts, profileOpts...)
	}
	if sky != math3d.Black {
		opts = append(opts, render.WithSkyColor(sky))
	}

	flagOpts, err := flagOverrides(*width, *height, *perspective, *pinhole, *aaMode, *bounces, *workers, *bands)
	if err != nil {
		return fmt.Errorf("raytrace: %w", err)
	}
	opts = append(opts, flagOpts...)

	camera := render.NewCamera(vec3(cam.Pos), vec3(cam.Forward), vec3(cam.Right), sc, opts...)
	log.Info("rendering", "scene", *sceneName, "width", camera.Options.Width, "height", camera.Options.Height,
		"aa", camera.Options.AA.String(), "perspective", camera.Options.Perspective)

	fb, dbg, err := camera.Render()
	if err != nil {
		return fmt.Errorf("raytrace: %w", err)
	}
	elapsed := time.Since(start)

	projection := "orthographic"
	if camera.Options.Perspective {
		projection = "perspective"
	}
	mainPath := fmt.Sprintf("%s_%s_%s.png", *out, projection, camera.Options.AA.String())
	if err := writePNG(mainPath, fb); err != nil {
		return fmt.Errorf("raytrace: %w", err)
	}
	log.Info("wrote image", "path", mainPath, "elapsed", elapsed)

	if dbg != nil {
		caption := fmt.Sprintf("%s  %s  %v", *sceneName, camera.Options.AA.String(), elapsed.Round(time.Millisecond))
		annotateCaption(dbg, caption)
		debugPath := filepath.Join(filepath.Dir(mainPath), "aa_debug.png")
		if err := writePNG(debugPath, dbg); err != nil {
			return fmt.Errorf("raytrace: %w", err)
		}
		log.Info("wrote debug image", "path", debugPath)
	}
	return nil
}

// flagOverrides converts only the flags the user actually set into Opt
// values, so defaulted (zero) flags fall through to the profile or to
// DefaultOptions rather than clobbering them.
func flagOverrides(width, height int, perspective bool, pinhole float64, aa string, bounces, workers, bands int) ([]render.Opt, error) {
	var opts []render.Opt
	if width > 0 || height > 0 {
		w, h := width, height
		if w == 0 {
			w = render.DefaultOptions().Width
		}
		if h == 0 {
			h = render.DefaultOptions().Height
		}
		opts = append(opts, render.WithResolution(w, h))
	}
	if perspective {
		d := float32(pinhole)
		if d == 0 {
			d = render.DefaultOptions().PinholeDistance
		}
		opts = append(opts, render.WithPerspective(d))
	}
	if aa != "" {
		mode, err := render.ParseAAMode(aa)
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithAA(mode))
	}
	if bounces > 0 {
		opts = append(opts, render.WithMaxBounces(bounces))
	}
	if workers > 0 {
		opts = append(opts, render.WithWorkers(workers))
	}
	if bands > 0 {
		opts = append(opts, render.WithBands(bands))
	}
	return opts, nil
}

func vec3(a [3]float32) math3d.Vec3 { return math3d.V3(a[0], a[1], a[2]) }

// writePNG converts a framebuffer's quantized byte layout (spec.md
// section 6: row-major from the visual top-left, RGB, no padding)
// directly into an image.RGBA and encodes it.
func writePNG(path string, fb *scene.Framebuffer) error {
	img := framebufferToRGBA(fb)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func framebufferToRGBA(fb *scene.Framebuffer) *image.RGBA {
	w, h := fb.Width, fb.Height
	bytes := fb.ToBytes()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		o := i * 4
		img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = bytes[i*3], bytes[i*3+1], bytes[i*3+2], 0xff
	}
	return img
}

// annotateCaption burns a short debug caption into the top-left corner
// of the debug framebuffer using golang.org/x/image/font/basicfont, the
// same family of APIs load/ttf.go uses to rasterize glyphs, scaled down
// to the fixed bitmap face a one-line caption does not need a TTF for.
func annotateCaption(fb *scene.Framebuffer, caption string) {
	img := framebufferToRGBA(fb)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, 11),
	}
	d.DrawString(strings.TrimSpace(caption))

	for imgY := 0; imgY < fb.Height; imgY++ {
		y := fb.Height - 1 - imgY // img rows are top-down; Set takes bottom-up y.
		for x := 0; x < fb.Width; x++ {
			c := img.RGBAAt(x, imgY)
			fb.Set(x, y, math3d.C(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255))
		}
	}
}
