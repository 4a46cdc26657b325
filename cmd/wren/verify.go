package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/qrv0/wren/internal/vecfile"
)

var errNoChecksumIndex = errors.New("no checksum_index in META")

func cmdVerify() {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	in := fs.String("in", "", "input .wvec")
	fs.Parse(os.Args[2:])
	if *in == "" { fmt.Println("usage: wren verify --in vec.wvec"); os.Exit(1) }
	err := verifyWVEC(*in)
	if err == nil {
		fmt.Println("checksum verify: OK")
		return
	}
	if errors.Is(err, errNoChecksumIndex) {
		fmt.Println(err)
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "checksum verify: FAILED: %v\n", err)
	os.Exit(3)
}

func verifyWVEC(path string) error {
	r, err := vecfile.Open(path)
	if err != nil { return err }
	defer r.Close()
	meta, err := r.Meta()
	if err != nil { return err }
	if len(meta.ChecksumIndex) == 0 { return errNoChecksumIndex }
	cs, ok := meta.ChecksumIndex[fmt.Sprint(vecfile.TypeData)]
	if !ok { return fmt.Errorf("missing checksum for section %d", vecfile.TypeData) }
	if cs.ChunkSize <= 0 {
		return fmt.Errorf("invalid chunk_size %d in checksum index", cs.ChunkSize)
	}
	data, err := r.SectionUncompressed(vecfile.TypeData)
	if err != nil { return err }
	want := cs.Hashes()
	have := vecfile.ChunkHashes(data, cs.ChunkSize)
	if len(have) != len(want) {
		return fmt.Errorf("chunk count mismatch: have %d want %d", len(have), len(want))
	}
	for i := range have {
		if have[i] != want[i] { return fmt.Errorf("chunk %d mismatch", i) }
	}
	return nil
}
