package resources

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/font"
	"github.com/npillmayer/glyphsynth/core/font/fontregistry"
	"github.com/npillmayer/schuko"
	_ "golang.org/x/image/bmp" // register BMP decoder
	xfont "golang.org/x/image/font"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
	imageResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case imageResourceType:
		s = fmt.Sprintf("image not found: %s", res)
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

// --- Images ---------------------------------------------------------------

type imgPlusErr struct {
	img image.Image
	err error
}

// ImagePromise is returned by ResolveImage.
type ImagePromise interface {
	Image() (image.Image, error)
	Await(ctx context.Context) (image.Image, error)
}

type imageLoader struct {
	await func(ctx context.Context) (image.Image, error)
}

func (loader imageLoader) Image() (image.Image, error) {
	return loader.await(context.Background())
}

func (loader imageLoader) Await(ctx context.Context) (image.Image, error) {
	return loader.await(ctx)
}

// ResolveImage loads and decodes an image file. PNG, JPEG, GIF, BMP, TIFF and
// WebP images are supported.
func ResolveImage(path string) ImagePromise {
	ch := make(chan imgPlusErr, 1)
	go func(ch chan<- imgPlusErr) {
		defer close(ch)
		result := imgPlusErr{}
		result.img, result.err = DecodeImage(path)
		ch <- result
	}(ch)
	return imageLoader{
		await: func(ctx context.Context) (image.Image, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.img, r.err
			}
		},
	}
}

// DecodeImage synchronously loads and decodes an image file.
func DecodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NotFound(path, imageResourceType)
		}
		return nil, core.WrapError(err, core.EINVALID, "cannot open image %s", path)
	}
	defer file.Close()
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode image %s", path)
	}
	tracer().Debugf("decoded %s image %s", format, filepath.Base(path))
	return img, nil
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise is returned by ResolveTypeCase.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
	Await(ctx context.Context) (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (*font.TypeCase, error) {
	return loader.await(ctx)
}

// ResolveTypeCase resolves a font type case with a given size in pixels.
//
// name may be a path to a font file or the name of a font installed on the
// system. If the font cannot be found, the promise will deliver a typecase of
// the fallback font together with an error of code core.EMISSING.
func ResolveTypeCase(conf schuko.Configuration, name string, style xfont.Style, weight xfont.Weight,
	size float64) TypeCasePromise {
	//
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		defer close(ch)
		result := fontPlusErr{}
		registry := fontregistry.GlobalRegistry()
		fname := font.NormalizeFontname(filepath.Base(name), style, weight)
		for _, key := range registry.Fonts() {
			if key == fname {
				result.font, result.err = registry.TypeCase(fname, size)
				ch <- result
				return
			}
		}
		var f *font.ScalableFont
		if isFontFile(name) {
			if _, err := os.Stat(name); err == nil {
				tracer().Debugf("%s is a font file", name)
				f, result.err = font.LoadOpenTypeFont(name)
			}
		}
		if f == nil {
			fpath, err := findfont.Find(name) // try to find as system font
			if err == nil && fpath != "" {
				tracer().Debugf("%s is a system font", name)
				f, result.err = font.LoadOpenTypeFont(fpath)
			}
		}
		if f == nil && conf != nil {
			if desc, variant := findFontConfigFont(conf, name, style, weight); desc.Path != "" {
				tracer().Debugf("%s is a fontconfig font, variant %s", name, variant)
				f, result.err = font.LoadOpenTypeFont(desc.Path)
			}
		}
		if f != nil {
			registry.StoreFont(fname, f)
		} else if result.err == nil {
			result.err = NotFound(name, fontResourceType)
		}
		var t *font.TypeCase
		var err error
		if t, err = registry.TypeCase(fname, size); result.err == nil {
			result.err = err
		}
		result.font = t
		ch <- result
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}
