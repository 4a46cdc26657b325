package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/qrv0/wren/internal/vecfile"
)

func cmdInspect() {
	if len(os.Args) < 3 {
		fmt.Println("usage: wren inspect <file.wvec>")
		os.Exit(1)
	}
	if err := inspectWVEC(os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}
}

func inspectWVEC(path string) error {
	r, err := vecfile.Open(path)
	if err != nil { return err }
	defer r.Close()
	meta, err := r.Meta()
	if err != nil { return err }
	b, _ := json.MarshalIndent(meta, "", "  ")
	fmt.Println("META:")
	fmt.Println(string(b))
	data, err := r.Section(vecfile.TypeData)
	if err != nil { return err }
	fmt.Println("DATA:", len(data), "bytes on disk")
	return nil
}
