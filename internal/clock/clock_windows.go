//go:build windows

package clock

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows/registry"
)

const (
	processorKey   = `HARDWARE\DESCRIPTION\System\CentralProcessor\0`
	processorValue = "~MHz"
)

// WindowsReader reads the rated clock from the registry
type WindowsReader struct {
	store ValueStore
}

// newPlatformReader creates a new Windows clock reader
func newPlatformReader() Reader {
	return &WindowsReader{store: registryStore{root: registry.LOCAL_MACHINE}}
}

// MaxMHz returns the ~MHz value of the first processor
func (r *WindowsReader) MaxMHz(ctx context.Context) (uint32, error) {
	return readStoreMHz(r.store, processorKey, processorValue, 1)
}

type registryStore struct {
	root registry.Key
}

func (s registryStore) Integer(key, name string) (uint64, error) {
	k, err := registry.OpenKey(s.root, key, registry.QUERY_VALUE)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := k.Close(); err != nil {
			log.Warnf("could not close registry key %s: %v", key, err)
		}
	}()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return 0, err
	}
	return v, nil
}
