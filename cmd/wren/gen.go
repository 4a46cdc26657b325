package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qrv0/wren/internal/vecfile"
)

func cmdGen() {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	out := fs.String("out", "", "output .wvec")
	n := fs.Int("n", 0, "size of vector")
	var incx int
	fs.IntVar(&incx, "x", 1, "increment for x vector")
	fs.IntVar(&incx, "incx", 1, "increment for x vector")
	useLZ4 := fs.Bool("lz4", false, "lz4-compress the DATA section")
	useZSTD := fs.Bool("zstd", false, "zstd-compress the DATA section")
	fs.Parse(os.Args[2:])
	if *out == "" {
		fmt.Println("usage: wren gen --out vec.wvec --n N [--incx I] [--lz4|--zstd]")
		os.Exit(1)
	}
	if *n <= 0 {
		fmt.Println("Value of 'n' should be greater than 0")
		return
	}
	if incx <= 0 {
		fmt.Println("Value of 'x' should be greater than 0")
		return
	}
	var flags uint32
	switch {
	case *useZSTD:
		flags = vecfile.FlagCompZSTD
	case *useLZ4:
		flags = vecfile.FlagCompLZ4
	}
	x := iota32(*n * incx)
	meta := vecfile.Meta{N: *n, Incx: incx, Generator: "iota"}
	if err := vecfile.WriteVector(*out, meta, x, flags); err != nil {
		fmt.Fprintf(os.Stderr, "gen: write error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Wrote:", *out)
}
