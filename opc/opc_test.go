package opc

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeZipFile writes a file into a zip archive.
func writeZipFile(t *testing.T, zw *zip.Writer, name, content string) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("Failed to create %s in zip: %v", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// createTestPackage builds a small container with slide parts and
// relationship manifests.
func createTestPackage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.pptx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	writeZipFile(t, zw, "_rels/.rels", `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
</Relationships>`)

	writeZipFile(t, zw, "ppt/presentation.xml", `<p:presentation/>`)

	writeZipFile(t, zw, "ppt/_rels/presentation.xml.rels", `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide2.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>
</Relationships>`)

	writeZipFile(t, zw, "ppt/slides/slide1.xml", `<p:sld/>`)
	writeZipFile(t, zw, "ppt/slides/slide2.xml", `<p:sld/>`)

	writeZipFile(t, zw, "ppt/slides/_rels/slide1.xml.rels", `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>
</Relationships>`)

	writeZipFile(t, zw, "ppt/media/image1.png", "not really a png")
	writeZipFile(t, zw, "ppt/theme/theme1.xml", `<a:theme/>`)

	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return path
}

func TestOpenNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pptx"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pptx")
	if err := os.WriteFile(path, []byte("this is not a zip file"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrCorruptArchive) {
		t.Errorf("expected ErrCorruptArchive, got %v", err)
	}
}

func TestReadPart(t *testing.T) {
	pkg, err := Open(createTestPackage(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer pkg.Close()

	data, err := pkg.ReadPart("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("ReadPart failed: %v", err)
	}
	if string(data) != `<p:sld/>` {
		t.Errorf("unexpected content: %q", data)
	}

	if _, err := pkg.ReadPart("ppt/slides/slide99.xml"); !errors.Is(err, ErrPartMissing) {
		t.Errorf("expected ErrPartMissing, got %v", err)
	}
}

func TestHasPart(t *testing.T) {
	pkg, err := Open(createTestPackage(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer pkg.Close()

	if !pkg.HasPart("ppt/presentation.xml") {
		t.Error("expected presentation part to exist")
	}
	if pkg.HasPart("ppt/nope.xml") {
		t.Error("did not expect ppt/nope.xml")
	}
}

func TestResolveRelationship(t *testing.T) {
	pkg, err := Open(createTestPackage(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer pkg.Close()

	target, ok := pkg.ResolveRelationship("ppt/presentation.xml", "rId1")
	if !ok {
		t.Fatal("rId1 not resolved")
	}
	if target != "ppt/slides/slide1.xml" {
		t.Errorf("target = %q, want ppt/slides/slide1.xml", target)
	}

	// Relative ../ targets normalize against the source directory.
	target, ok = pkg.ResolveRelationship("ppt/slides/slide1.xml", "rId1")
	if !ok {
		t.Fatal("slide rId1 not resolved")
	}
	if target != "ppt/media/image1.png" {
		t.Errorf("target = %q, want ppt/media/image1.png", target)
	}

	if _, ok := pkg.ResolveRelationship("ppt/presentation.xml", "rId99"); ok {
		t.Error("expected unknown id to miss")
	}
	if _, ok := pkg.ResolveRelationship("ppt/slides/slide2.xml", "rId1"); ok {
		t.Error("expected missing manifest to miss")
	}
}

func TestRelationshipsOfType(t *testing.T) {
	pkg, err := Open(createTestPackage(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer pkg.Close()

	slides := pkg.RelationshipsOfType("ppt/presentation.xml", "slide")
	// "slide" also matches nothing else here; manifest order preserved.
	if len(slides) != 2 {
		t.Fatalf("got %d slide relationships, want 2", len(slides))
	}
	if slides[0] != "ppt/slides/slide1.xml" || slides[1] != "ppt/slides/slide2.xml" {
		t.Errorf("unexpected order: %v", slides)
	}

	if !pkg.HasRelationshipOfType("ppt/presentation.xml", "theme") {
		t.Error("expected a theme relationship")
	}
	if pkg.HasRelationshipOfType("ppt/presentation.xml", "notesSlide") {
		t.Error("did not expect a notesSlide relationship")
	}

	if got := pkg.RelationshipsOfType("ppt/theme/theme1.xml", "image"); got != nil {
		t.Errorf("missing manifest should yield nil, got %v", got)
	}
}

func TestPartNamesOrder(t *testing.T) {
	pkg, err := Open(createTestPackage(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer pkg.Close()

	names := pkg.PartNames()
	if len(names) != 8 {
		t.Fatalf("got %d parts, want 8", len(names))
	}
	if names[0] != "_rels/.rels" {
		t.Errorf("archive order not preserved: first part %q", names[0])
	}
}
