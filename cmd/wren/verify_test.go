package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/qrv0/wren/internal/vecfile"
)

func TestVerifyWVECOK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toy.wvec")
	data := iota32(12)
	meta := vecfile.Meta{N: 6, Incx: 2, Generator: "iota"}
	if err := vecfile.WriteVector(path, meta, data, vecfile.FlagCompLZ4); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := verifyWVEC(path); err != nil { t.Fatalf("verify failed: %v", err) }
}

func TestVerifyWVECDetectsCorruption(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toy.wvec")
	data := iota32(64)
	meta := vecfile.Meta{N: 64, Incx: 1, Generator: "iota"}
	// store DATA uncompressed so a byte flip stays decodable
	if err := vecfile.WriteVector(path, meta, data, 0); err != nil { t.Fatalf("write error: %v", err) }

	r, err := vecfile.Open(path)
	if err != nil { t.Fatalf("open: %v", err) }
	var dataOff int64 = -1
	for _, e := range r.TOC {
		if e.TypeID == vecfile.TypeData { dataOff = int64(e.Offset) }
	}
	r.Close()
	if dataOff < 0 { t.Fatalf("DATA section not found") }

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil { t.Fatalf("reopen: %v", err) }
	if _, err := f.WriteAt([]byte{0xFF}, dataOff+7); err != nil { t.Fatalf("corrupt: %v", err) }
	f.Close()

	if err := verifyWVEC(path); err == nil { t.Fatalf("corruption not detected") }
}

func TestVerifyWVECRejectsZeroChunkSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zerochunk.wvec")
	meta := `{"format_version":1,"dtype":"f32","n":1,"incx":1,` +
		`"checksum_index":{"2":{"algo":"xxh3-64","chunk_size":0,"count":0,"hashes_hex":[]}}}`
	w := vecfile.NewWriter()
	w.AddSection(vecfile.TypeMeta, []byte(meta), 0)
	w.AddSection(vecfile.TypeData, []byte{0, 0, 0, 0}, 0)
	if err := w.Write(path); err != nil { t.Fatalf("write error: %v", err) }
	err := verifyWVEC(path)
	if err == nil { t.Fatalf("zero chunk_size accepted") }
	if errors.Is(err, errNoChecksumIndex) { t.Fatalf("wrong error: %v", err) }
}

func TestVerifyWVECNoIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noidx.wvec")
	w := vecfile.NewWriter()
	w.AddSection(vecfile.TypeMeta, []byte(`{"format_version":1,"dtype":"f32","n":1,"incx":1}`), 0)
	w.AddSection(vecfile.TypeData, []byte{0, 0, 0, 0}, 0)
	if err := w.Write(path); err != nil { t.Fatalf("write error: %v", err) }
	err := verifyWVEC(path)
	if !errors.Is(err, errNoChecksumIndex) { t.Fatalf("want errNoChecksumIndex, got %v", err) }
}
