package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Debugf("exiting: %v", err)
		os.Exit(1)
	}
}
