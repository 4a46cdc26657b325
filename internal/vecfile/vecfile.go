package vecfile

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"
	lz4 "github.com/pierrec/lz4/v4"
	xxh3 "github.com/zeebo/xxh3"
)

// .wvec container: magic, header, TOC, 4096-aligned sections.
// Section 1 is META (JSON), section 2 is the little-endian float32 payload.

var magic = [8]byte{'W', 'V', 'E', 'C', 0, 0, 0, 0}

const (
	TypeMeta = 1
	TypeData = 2
)

const (
	FlagCompZSTD uint32 = 1 << 0
	FlagCompLZ4  uint32 = 1 << 1
)

// ChecksumChunkSize is the default chunk for the xxh3 checksum index.
const ChecksumChunkSize = 1 << 20

// maxSections bounds the TOC length accepted from a file header.
const maxSections = 256

type Meta struct {
	FormatVersion int                    `json:"format_version"`
	Dtype         string                 `json:"dtype"`
	N             int                    `json:"n"`
	Incx          int                    `json:"incx"`
	Generator     string                 `json:"generator,omitempty"`
	ChecksumIndex map[string]ChecksumSet `json:"checksum_index,omitempty"`
}

type ChecksumSet struct {
	Algo      string   `json:"algo"`
	ChunkSize int      `json:"chunk_size"`
	Count     int      `json:"count"`
	HashesHex []string `json:"hashes_hex"`
}

type Writer struct {
	sections []struct {
		TypeID uint32
		Data   []byte
		Flags  uint32
	}
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) AddSection(t uint32, data []byte, flags uint32) {
	w.sections = append(w.sections, struct {
		TypeID uint32
		Data   []byte
		Flags  uint32
	}{t, data, flags})
}

func zstdEncode(b []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil { return nil, err }
	defer enc.Close()
	return enc.EncodeAll(b, make([]byte, 0, len(b))), nil
}

func zstdDecode(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil { return nil, err }
	defer dec.Close()
	return dec.DecodeAll(b, nil)
}

func lz4Encode(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(b); err != nil { return nil, err }
	if err := w.Close(); err != nil { return nil, err }
	return buf.Bytes(), nil
}

func lz4Decode(b []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(b))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil { return nil, err }
	return buf.Bytes(), nil
}

func alignUp(x, a int64) int64 {
	r := x % a
	if r == 0 { return x }
	return x + (a - r)
}

func (w *Writer) Write(path string) error {
	if len(w.sections) == 0 { return errors.New("vecfile: no sections") }
	if len(w.sections) > maxSections { return fmt.Errorf("vecfile: too many sections: %d", len(w.sections)) }
	f, err := os.Create(path)
	if err != nil { return err }
	defer f.Close()
	// compress payloads according to flags
	payloads := make([][]byte, len(w.sections))
	for i, s := range w.sections {
		data := s.Data
		if s.Flags&FlagCompZSTD != 0 {
			if data, err = zstdEncode(data); err != nil { return err }
		} else if s.Flags&FlagCompLZ4 != 0 {
			if data, err = lz4Encode(data); err != nil { return err }
		}
		payloads[i] = data
	}
	if _, err := f.Write(magic[:]); err != nil { return err }
	var hdr struct{ Ver, Num, Res uint32 }
	hdr.Ver, hdr.Num = 1, uint32(len(w.sections))
	if err := binary.Write(f, binary.LittleEndian, &hdr); err != nil { return err }
	recs := make([]TOCEntry, len(w.sections))
	base := int64(8 + 12 + 24*len(w.sections))
	offset := alignUp(base, 4096)
	for i, s := range w.sections {
		recs[i] = TOCEntry{TypeID: s.TypeID, Offset: uint64(offset), Size: uint64(len(payloads[i])), Flags: s.Flags}
		offset = alignUp(offset+int64(len(payloads[i])), 4096)
	}
	for _, r := range recs {
		if err := binary.Write(f, binary.LittleEndian, &r); err != nil { return err }
	}
	for i := range w.sections {
		if _, err := f.Seek(int64(recs[i].Offset), io.SeekStart); err != nil { return err }
		if _, err := f.Write(payloads[i]); err != nil { return err }
	}
	return nil
}

type TOCEntry struct {
	TypeID uint32
	Offset uint64
	Size   uint64
	Flags  uint32
}

type Reader struct {
	f   *os.File
	TOC []TOCEntry
}

func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil { return nil, err }
	head := make([]byte, 8)
	if _, err := io.ReadFull(f, head); err != nil { f.Close(); return nil, err }
	if !bytes.Equal(head, magic[:]) { f.Close(); return nil, errors.New("not a WVEC file") }
	var hdr struct{ Ver, Num, Res uint32 }
	if err := binary.Read(f, binary.LittleEndian, &hdr); err != nil { f.Close(); return nil, err }
	if hdr.Num == 0 || hdr.Num > maxSections {
		f.Close()
		return nil, fmt.Errorf("vecfile: bad section count %d", hdr.Num)
	}
	toc := make([]TOCEntry, hdr.Num)
	for i := range toc {
		if err := binary.Read(f, binary.LittleEndian, &toc[i]); err != nil { f.Close(); return nil, err }
	}
	return &Reader{f: f, TOC: toc}, nil
}

func (r *Reader) Close() error { return r.f.Close() }

// Section returns the raw (possibly compressed) payload of a section.
func (r *Reader) Section(typeID uint32) ([]byte, error) {
	for _, e := range r.TOC {
		if e.TypeID != typeID { continue }
		buf := make([]byte, e.Size)
		if _, err := r.f.ReadAt(buf, int64(e.Offset)); err != nil { return nil, err }
		return buf, nil
	}
	return nil, fmt.Errorf("section %d not found", typeID)
}

// SectionUncompressed returns the payload after per-section decompression.
func (r *Reader) SectionUncompressed(typeID uint32) ([]byte, error) {
	for _, e := range r.TOC {
		if e.TypeID != typeID { continue }
		buf := make([]byte, e.Size)
		if _, err := r.f.ReadAt(buf, int64(e.Offset)); err != nil { return nil, err }
		if e.Flags&FlagCompZSTD != 0 { return zstdDecode(buf) }
		if e.Flags&FlagCompLZ4 != 0 { return lz4Decode(buf) }
		return buf, nil
	}
	return nil, fmt.Errorf("section %d not found", typeID)
}

// Meta decodes the META section.
func (r *Reader) Meta() (*Meta, error) {
	b, err := r.SectionUncompressed(TypeMeta)
	if err != nil { return nil, err }
	var m Meta
	if err := json.Unmarshal(b, &m); err != nil { return nil, fmt.Errorf("vecfile: invalid META: %w", err) }
	return &m, nil
}

// Vector reads META and the decoded float32 payload.
func (r *Reader) Vector() (*Meta, []float32, error) {
	m, err := r.Meta()
	if err != nil { return nil, nil, err }
	if m.Dtype != "f32" { return nil, nil, fmt.Errorf("vecfile: unsupported dtype %q", m.Dtype) }
	raw, err := r.SectionUncompressed(TypeData)
	if err != nil { return nil, nil, err }
	if len(raw)%4 != 0 { return nil, nil, fmt.Errorf("vecfile: DATA size %d not a multiple of 4", len(raw)) }
	return m, bytesToF32(raw), nil
}

// WriteVector writes a strided vector with a checksum index over the
// uncompressed DATA payload. flags selects DATA compression.
func WriteVector(path string, meta Meta, data []float32, flags uint32) error {
	if meta.N <= 0 || meta.Incx <= 0 { return fmt.Errorf("vecfile: n and incx must be positive") }
	if need := 1 + (meta.N-1)*meta.Incx; len(data) < need {
		return fmt.Errorf("vecfile: data too short: len %d, need %d", len(data), need)
	}
	meta.FormatVersion = 1
	meta.Dtype = "f32"
	raw := f32Bytes(data)
	meta.ChecksumIndex = map[string]ChecksumSet{
		fmt.Sprint(TypeData): checksumSet(raw, ChecksumChunkSize),
	}
	mb, err := json.Marshal(&meta)
	if err != nil { return err }
	w := NewWriter()
	w.AddSection(TypeMeta, mb, 0)
	w.AddSection(TypeData, raw, flags)
	return w.Write(path)
}

// ChunkHashes computes xxh3-64 over consecutive chunks of data.
// A non-positive chunk size returns nil; callers validate sizes taken
// from untrusted META.
func ChunkHashes(data []byte, chunk int) []uint64 {
	if chunk <= 0 { return nil }
	hashes := make([]uint64, 0, (len(data)+chunk-1)/chunk)
	for i := 0; i < len(data); i += chunk {
		end := i + chunk
		if end > len(data) { end = len(data) }
		hashes = append(hashes, xxh3.Hash(data[i:end]))
	}
	return hashes
}

func checksumSet(data []byte, chunk int) ChecksumSet {
	hashes := ChunkHashes(data, chunk)
	hx := make([]string, len(hashes))
	for i, h := range hashes { hx[i] = fmt.Sprintf("%016x", h) }
	return ChecksumSet{Algo: "xxh3-64", ChunkSize: chunk, Count: len(hashes), HashesHex: hx}
}

// Hashes decodes the hex hash list of a checksum set.
func (c ChecksumSet) Hashes() []uint64 {
	out := make([]uint64, len(c.HashesHex))
	for i, s := range c.HashesHex {
		var x uint64
		fmt.Sscanf(s, "%x", &x)
		out[i] = x
	}
	return out
}

func f32Bytes(v []float32) []byte {
	out := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(f))
	}
	return out
}

func bytesToF32(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return out
}
