package resources

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/font"
	"github.com/npillmayer/schuko"
	xfont "golang.org/x/image/font"
)

func findFontConfigBinary(conf schuko.Configuration) (string, error) {
	fcpath := conf.GetString("fontconfig")
	if fcpath == "" {
		tracer().Infof("fontconfig not configured: key 'fontconfig' should point to location of 'fc-list' binary")
		return "", core.Error(core.EMISSING, "fontconfig not configured")
	}
	if !filepath.IsAbs(fcpath) {
		return "", core.Error(core.EINVALID, "fontconfig binary fc-list must point to absolute path: %s", fcpath)
	}
	if fi, err := os.Stat(fcpath); err != nil || (fi.Mode().Perm()&0100) == 0 {
		return "", core.WrapError(err, core.EINVALID,
			"fontconfig configuration points to an invalid binary: %s", fcpath)
	}
	return fcpath, nil
}

// cacheFontConfigList runs fc-list once and stores its output in the user's
// cache directory. Subsequent calls will return the cached file unless update
// is set.
func cacheFontConfigList(conf schuko.Configuration, update bool) (string, error) {
	cachedir, err := CacheDirPath(conf)
	if err != nil {
		return "", err
	}
	fcListFilename := filepath.Join(cachedir, "fontlist.txt")
	if _, err := os.Stat(fcListFilename); err == nil && !update {
		return fcListFilename, nil
	}
	fcpath, err := findFontConfigBinary(conf)
	if err != nil {
		return "", err
	}
	fontlistFile, err := os.Create(fcListFilename)
	if err == nil {
		defer fontlistFile.Close()
		fccmd := exec.Command(fcpath)
		fccmd.Stdout = fontlistFile
		err = fccmd.Run()
	}
	if err != nil {
		return "", core.WrapError(err, core.EINVALID,
			"fontconfig output file cannot be created: %s", fcListFilename)
	}
	return fcListFilename, nil
}

// parseFontConfigList reads lines of fc-list output, of the form
//
//   /usr/share/fonts/noto/NotoSansBengali-Bold.ttf: Noto Sans Bengali:style=Bold
//
// Font collections (*.ttc) are skipped.
func parseFontConfigList(r io.Reader) ([]font.Descriptor, error) {
	var descs []font.Descriptor
	scanner := bufio.NewScanner(r)
	ttc := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			continue
		}
		fontpath := strings.TrimSpace(fields[0])
		if strings.HasSuffix(fontpath, ".ttc") {
			ttc++
			continue
		}
		fontname := strings.TrimPrefix(strings.TrimSpace(fields[1]), ".")
		if comma := strings.Index(fontname, ","); comma > 0 {
			fontname = fontname[:comma] // localized family names follow
		}
		desc := font.Descriptor{Family: fontname, Path: fontpath}
		fontvari := strings.ToLower(fields[2])
		switch {
		case strings.Contains(fontvari, "regular"), strings.Contains(fontvari, "text"):
			desc.Variants = []string{"regular"}
		case strings.Contains(fontvari, "light"):
			desc.Variants = []string{"light"}
		case strings.Contains(fontvari, "italic"):
			desc.Variants = []string{"italic"}
		case strings.Contains(fontvari, "bold"), strings.Contains(fontvari, "black"):
			desc.Variants = []string{"bold"}
		}
		descs = append(descs, desc)
	}
	if err := scanner.Err(); err != nil {
		return descs, core.WrapError(err, core.EINVALID, "cannot read fontconfig font list")
	}
	if ttc > 0 {
		tracer().Infof("skipping %d platform fonts: TTC not yet supported", ttc)
	}
	return descs, nil
}

func loadFontConfigList(conf schuko.Configuration) ([]font.Descriptor, error) {
	fclist, err := cacheFontConfigList(conf, false)
	if err != nil {
		return nil, err
	}
	fc, err := os.Open(fclist)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID,
			"fontconfig font list cannot be opened: %s", fclist)
	}
	defer fc.Close()
	return parseFontConfigList(fc)
}

var loadFontConfigListTask sync.Once
var fontConfigDescriptors []font.Descriptor

// findFontConfigFont searches for a locally installed font variant using the fontconfig
// system (https://www.freedesktop.org/wiki/Software/fontconfig/).
// fontconfig has to be configured in the application configuration by
// setting the absolute path of the 'fc-list' binary.
//
// The output of fc-list is copied to the user's cache directory once.
// If fontconfig is not configured, findFontConfigFont will silently return an
// empty font descriptor and an empty variant name.
func findFontConfigFont(conf schuko.Configuration, pattern string, style xfont.Style, weight xfont.Weight) (
	desc font.Descriptor, variant string) {
	//
	loadFontConfigListTask.Do(func() {
		var err error
		if fontConfigDescriptors, err = loadFontConfigList(conf); err != nil {
			tracer().Infof("no fontconfig font list: %v", err)
			return
		}
		tracer().Infof("loaded fontconfig list with %d fonts", len(fontConfigDescriptors))
	})
	var confidence font.MatchConfidence
	desc, variant, confidence = font.ClosestMatch(fontConfigDescriptors, pattern, style, weight)
	tracer().Debugf("closest fontconfig match confidence for %s|%s = %d", desc.Family, variant, confidence)
	if confidence > font.LowConfidence {
		return
	}
	return font.Descriptor{}, ""
}
