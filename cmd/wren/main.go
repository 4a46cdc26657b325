package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/qrv0/wren/internal/downloader"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "init":
		cmdInit()
	case "list":
		cmdList()
	case "pull":
		cmdPull()
	case "gen":
		cmdGen()
	case "inspect":
		cmdInspect()
	case "verify":
		cmdVerify()
	case "scal":
		cmdScal()
	case "axpy":
		cmdAxpy()
	case "dot":
		cmdDot()
	case "devices":
		cmdDevices()
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("wren - strided BLAS level-1 kernels on GPU, validated against a CPU reference")
	fmt.Println("usage: wren <command> [args]")
	fmt.Println("  init                        initialize ~/.wren")
	fmt.Println("  list                        list vector files in ~/.wren/vectors")
	fmt.Println("  pull  <url>                 download a .wvec file to ~/.wren/vectors")
	fmt.Println("  gen    --out <file.wvec> --n N [--incx I] [--lz4|--zstd]")
	fmt.Println("  inspect <file.wvec>         print META and section sizes")
	fmt.Println("  verify --in <file.wvec>     verify DATA checksums")
	fmt.Println("  scal   [-a alpha] [-x incx] [-n N] [--in f.wvec] [--out f.wvec]")
	fmt.Println("  axpy   [-a alpha] [-x incx] [-y incy] [-n N]")
	fmt.Println("  dot    [-x incx] [-y incy] [-n N]")
	fmt.Println("  devices                     report the compute backend")
}

var (
	homeDir    = must(os.UserHomeDir())
	wrenHome   = filepath.Join(homeDir, ".wren")
	vectorsDir = filepath.Join(wrenHome, "vectors")
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func cmdInit() {
	if err := os.MkdirAll(vectorsDir, 0o755); err != nil { log.Fatal(err) }
	fmt.Println("Initialized:", wrenHome)
}

func cmdList() {
	entries, err := os.ReadDir(vectorsDir)
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".wvec" {
			fmt.Println(e.Name())
		}
	}
}

func cmdPull() {
	if len(os.Args) < 3 {
		fmt.Println("usage: wren pull <url>")
		os.Exit(1)
	}
	url := os.Args[2]
	out := filepath.Join(vectorsDir, filepath.Base(url))
	if err := downloader.Download(url, out); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Downloaded:", out)
}
