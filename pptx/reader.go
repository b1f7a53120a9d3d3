package pptx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/deckmine/model"
	"github.com/tsawler/deckmine/normalize"
	"github.com/tsawler/deckmine/opc"
	"github.com/tsawler/deckmine/stats"
)

// ErrNoSlides is returned when a presentation declares no slides at
// all; everything else degrades to defaults and warnings.
var ErrNoSlides = errors.New("pptx: presentation contains no slides")

const presentationPart = "ppt/presentation.xml"

// Default slide canvas in EMUs (10in × 7.5in).
const (
	defaultCanvasWidth  = 9144000
	defaultCanvasHeight = 6858000
)

// Reader extracts the feature tree from one opened presentation.
type Reader struct {
	filename string
	pkg      *opc.Package
	workers  int
	cfg      stats.Config
	log      *zap.SugaredLogger

	dims  model.Dimensions
	warns atomic.Int64
}

// Option configures a Reader.
type Option func(*Reader)

// WithWorkers bounds concurrent slide extraction; values below 1 mean
// sequential.
func WithWorkers(n int) Option {
	return func(r *Reader) { r.workers = n }
}

// WithThresholds overrides the statistic and categorization constants.
func WithThresholds(cfg stats.Config) Option {
	return func(r *Reader) { r.cfg = cfg }
}

// WithLogger sets the warning logger; the default discards everything.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Reader) {
		if l != nil {
			r.log = l
		}
	}
}

// Open opens the presentation container at filename.
func Open(filename string, opts ...Option) (*Reader, error) {
	pkg, err := opc.Open(filename)
	if err != nil {
		return nil, err
	}
	r := &Reader{
		filename: filename,
		pkg:      pkg,
		workers:  1,
		cfg:      stats.DefaultConfig(),
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close releases the underlying container.
func (r *Reader) Close() error {
	return r.pkg.Close()
}

// Warnings returns the number of recoverable problems seen so far.
func (r *Reader) Warnings() int {
	return int(r.warns.Load())
}

func (r *Reader) warnf(format string, args ...any) {
	r.warns.Add(1)
	r.log.Warnf(format, args...)
}

// Extract runs the full pipeline: metadata, theme, masters, slides,
// statistics. It returns the assembled tree and the warning count; the
// only fatal conditions are an unreadable container and a presentation
// with no slides.
func (r *Reader) Extract() (*model.Presentation, int, error) {
	p := &model.Presentation{
		Filename:    filepath.Base(r.filename),
		ExtractedAt: time.Now().UTC(),
	}
	p.ID = normalize.DeterministicID(p.Filename)

	if raw, err := os.ReadFile(r.filename); err != nil {
		r.warnf("hashing %s: %v", r.filename, err)
	} else {
		p.FileHash = normalize.ContentHash(raw)
	}

	pres := r.decodePresentation()
	r.dims = canvasDimensions(pres)
	if pres == nil || pres.SldSz == nil {
		r.warnf("canvas size missing, assuming %dx%d EMU", r.dims.Width, r.dims.Height)
	}
	p.Dimensions = r.dims

	p.Provenance = r.decodeProvenance()
	p.CustomProperties = r.decodeCustomProperties()
	p.Theme = r.decodeTheme()
	p.Masters = r.decodeMasters(pres)

	slideParts := r.discoverSlides(pres)
	if len(slideParts) == 0 {
		return nil, r.Warnings(), fmt.Errorf("%w: %s", ErrNoSlides, r.filename)
	}

	slides := make([]*model.Slide, len(slideParts))
	if r.workers > 1 {
		var g errgroup.Group
		g.SetLimit(r.workers)
		for i, partName := range slideParts {
			i, partName := i, partName
			g.Go(func() error {
				slides[i] = r.extractSlide(partName, i+1)
				return nil
			})
		}
		// Extraction never returns an error; failures are warnings.
		_ = g.Wait()
	} else {
		for i, partName := range slideParts {
			slides[i] = r.extractSlide(partName, i+1)
		}
	}

	for _, s := range slides {
		s.Features = stats.ComputeFeatures(s, r.cfg)
	}
	p.Slides = slides
	p.Stats = stats.ComputeGlobal(slides, p.Theme.Colors, r.cfg)

	return p, r.Warnings(), nil
}

// decodePresentation parses ppt/presentation.xml; nil means the part
// was missing or malformed and every consumer falls back to defaults.
func (r *Reader) decodePresentation() *presentationXML {
	data, err := r.pkg.ReadPart(presentationPart)
	if err != nil {
		r.warnf("presentation part: %v", err)
		return nil
	}
	var pres presentationXML
	if err := xml.Unmarshal(data, &pres); err != nil {
		r.warnf("presentation part: malformed XML: %v", err)
		return nil
	}
	return &pres
}

func canvasDimensions(pres *presentationXML) model.Dimensions {
	d := model.Dimensions{Width: defaultCanvasWidth, Height: defaultCanvasHeight}
	if pres != nil && pres.SldSz != nil && pres.SldSz.Cx > 0 && pres.SldSz.Cy > 0 {
		d.Width = pres.SldSz.Cx
		d.Height = pres.SldSz.Cy
	}
	d.AspectRatio = normalize.ReduceRatio(d.Width, d.Height)
	return d
}

// discoverSlides returns slide part paths in presentation order: the
// declared slide id list when it resolves, otherwise a name-sorted scan
// of the slides directory.
func (r *Reader) discoverSlides(pres *presentationXML) []string {
	var parts []string
	if pres != nil && pres.SldIdLst != nil {
		for _, entry := range pres.SldIdLst.SldId {
			target, ok := r.pkg.ResolveRelationship(presentationPart, entry.RID)
			if !ok {
				r.warnf("slide id %s: unresolved relationship %s", entry.ID, entry.RID)
				continue
			}
			parts = append(parts, target)
		}
	}
	if len(parts) > 0 {
		return parts
	}

	for _, name := range r.pkg.PartNames() {
		if strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml") {
			parts = append(parts, name)
		}
	}
	sort.Strings(parts)
	if len(parts) > 0 {
		r.warnf("slide id list missing, discovered %d slide parts by scan", len(parts))
	}
	return parts
}
