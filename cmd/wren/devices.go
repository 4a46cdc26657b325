package main

import (
	"fmt"
	"strings"

	"github.com/qrv0/wren/internal/gpu"
)

func cmdDevices() {
	fmt.Println("backend:", gpu.DeviceName())
	if gpu.Available() {
		fmt.Println("cuda: available")
	} else {
		fmt.Println("cuda: not built (rebuild with -tags cuda)")
	}
	if feats := gpu.Features(); len(feats) > 0 {
		fmt.Println("features:", strings.Join(feats, " "))
	}
}
