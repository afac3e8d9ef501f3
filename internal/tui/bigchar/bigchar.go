// Package bigchar renders a glyph as large block art using half-block characters.
package bigchar

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontPaths are tried in order; broad-coverage fonts come first.
var fontPaths = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf",
	// macOS
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/System/Library/Fonts/Apple Symbols.ttf",
	// Windows
	"C:\\Windows\\Fonts\\seguisym.ttf",
	"C:\\Windows\\Fonts\\arialuni.ttf",
}

// brightnessThreshold is the gray level above which a pixel counts as ink.
const brightnessThreshold = 40

// Renderer draws glyphs with one font face and caches the results.
// A zero Renderer has no face and renders nothing.
type Renderer struct {
	face font.Face

	mu    sync.Mutex
	cache map[cacheKey]string
}

type cacheKey struct {
	r          rune
	cols, rows int
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Default returns a renderer using the first system font that loads.
func Default() *Renderer {
	defaultOnce.Do(func() {
		defaultRenderer = &Renderer{face: loadFace(fontPaths)}
	})
	return defaultRenderer
}

// NewRenderer creates a renderer for face.
func NewRenderer(face font.Face) *Renderer {
	return &Renderer{face: face}
}

func loadFace(paths []string) font.Face {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			if fnt, err := coll.Font(0); err == nil {
				if face, err := opentype.NewFace(fnt, opts); err == nil {
					return face
				}
			}
		}
		if fnt, err := opentype.Parse(data); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}
	return nil
}

// Available reports whether the renderer has a font face.
func (rd *Renderer) Available() bool {
	return rd != nil && rd.face != nil
}

// Render draws r into a cols x rows block of half-block characters.
// It returns "" when no face is loaded or the font has no glyph for r.
func (rd *Renderer) Render(r rune, cols, rows int) string {
	if !rd.Available() || cols <= 0 || rows <= 0 {
		return ""
	}

	key := cacheKey{r: r, cols: cols, rows: rows}
	rd.mu.Lock()
	defer rd.mu.Unlock()
	if s, ok := rd.cache[key]; ok {
		return s
	}

	s := rd.render(r, cols, rows)
	if rd.cache == nil {
		rd.cache = make(map[cacheKey]string)
	}
	rd.cache[key] = s
	return s
}

func (rd *Renderer) render(r rune, cols, rows int) string {
	bounds, _, ok := rd.face.GlyphBounds(r)
	if !ok {
		return ""
	}
	glyphW := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const padding = 4
	w := max(glyphW+padding*2, 64)
	h := max(glyphH+padding*2, 64)

	src := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: rd.face,
		Dot:  fixed.P((w-glyphW)/2-bounds.Min.X.Floor(), h-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(r))

	return halfBlocks(scaleDown(src, cols, rows*2), cols, rows)
}

// scaleDown shrinks src to w x h, averaging each source area.
func scaleDown(src image.Image, w, h int) image.Image {
	return imaging.Resize(src, w, h, imaging.Box)
}

// halfBlocks turns img into rows lines of cols cells; each cell covers two
// vertical pixels.
func halfBlocks(img image.Image, cols, rows int) string {
	bounds := img.Bounds()
	lit := func(x, y int) bool {
		p := image.Point{X: bounds.Min.X + x, Y: bounds.Min.Y + y}
		if !p.In(bounds) {
			return false
		}
		return color.GrayModel.Convert(img.At(p.X, p.Y)).(color.Gray).Y > brightnessThreshold
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			top, bottom := lit(col, row*2), lit(col, row*2+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
