package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/wayfinder/cmd/wayfinder/app"
)

func main() {
	err := app.NewWayfinderCmd().Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
