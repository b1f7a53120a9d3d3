// Package opc provides read access to an Open Packaging Conventions
// container: the zip archive of named parts and relationship manifests
// that office documents are built from.
//
// Relationship lookups never fail: a missing manifest, malformed XML
// or absent id yields an empty result, and the caller substitutes its
// documented default.
package opc

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// Package-level errors.
var (
	ErrNotFound       = errors.New("opc: package file not found")
	ErrCorruptArchive = errors.New("opc: not a valid zip archive")
	ErrPartMissing    = errors.New("opc: part not found")
)

// Package is an opened container. Reads of distinct parts are safe to
// perform concurrently.
type Package struct {
	zr    *zip.ReadCloser
	parts map[string]*zip.File
	names []string // archive order
}

// Open opens the container at path.
func Open(filename string) (*Package, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, filename, err)
	}

	p := &Package{
		zr:    zr,
		parts: make(map[string]*zip.File, len(zr.File)),
		names: make([]string, 0, len(zr.File)),
	}
	for _, f := range zr.File {
		p.parts[f.Name] = f
		p.names = append(p.names, f.Name)
	}
	return p, nil
}

// Close releases the underlying archive.
func (p *Package) Close() error {
	if p.zr != nil {
		err := p.zr.Close()
		p.zr = nil
		return err
	}
	return nil
}

// HasPart reports whether a part exists at the given path.
func (p *Package) HasPart(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// PartNames returns all part paths in archive order.
func (p *Package) PartNames() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// ReadPart returns the raw bytes of a part.
func (p *Package) ReadPart(name string) ([]byte, error) {
	f, ok := p.parts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartMissing, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening part %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading part %s: %w", name, err)
	}
	return data, nil
}

// Relationship is one id→target mapping from a manifest.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationshipsXML struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Relationship []Relationship `xml:"Relationship"`
}

// relsPathFor returns the manifest path for a source part:
// "ppt/slides/slide1.xml" → "ppt/slides/_rels/slide1.xml.rels".
func relsPathFor(sourcePart string) string {
	dir := path.Dir(sourcePart)
	base := path.Base(sourcePart)
	if dir == "." {
		return path.Join("_rels", base+".rels")
	}
	return path.Join(dir, "_rels", base+".rels")
}

// relationships decodes the manifest for a source part, in manifest
// order. Any failure yields an empty list.
func (p *Package) relationships(sourcePart string) []Relationship {
	data, err := p.ReadPart(relsPathFor(sourcePart))
	if err != nil {
		return nil
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil
	}
	return rels.Relationship
}

// resolveTarget normalizes a relationship target against the source
// part's directory, so "../media/image1.png" referenced from
// "ppt/slides/slide1.xml" becomes "ppt/media/image1.png".
func resolveTarget(sourcePart, target string) string {
	if target == "" {
		return ""
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join(path.Dir(sourcePart), target)
}

// ResolveRelationship returns the normalized target of a relationship
// id declared by sourcePart, or ("", false) when it cannot be found.
func (p *Package) ResolveRelationship(sourcePart, id string) (string, bool) {
	for _, rel := range p.relationships(sourcePart) {
		if rel.ID == id {
			return resolveTarget(sourcePart, rel.Target), true
		}
	}
	return "", false
}

// RelationshipsOfType returns the normalized targets of every
// relationship whose type contains typeSubstr, in manifest order.
func (p *Package) RelationshipsOfType(sourcePart, typeSubstr string) []string {
	var targets []string
	for _, rel := range p.relationships(sourcePart) {
		if strings.Contains(rel.Type, typeSubstr) {
			targets = append(targets, resolveTarget(sourcePart, rel.Target))
		}
	}
	return targets
}

// HasRelationshipOfType reports whether sourcePart declares any
// relationship whose type contains typeSubstr.
func (p *Package) HasRelationshipOfType(sourcePart, typeSubstr string) bool {
	for _, rel := range p.relationships(sourcePart) {
		if strings.Contains(rel.Type, typeSubstr) {
			return true
		}
	}
	return false
}
