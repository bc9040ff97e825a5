package store

import (
	"fmt"
	"os"
)

// Open builds an Adapter over the backend selected by the TOPIKPAL_STORE
// environment variable ("sqlite" default, "json" for the file backend).
// An empty path uses the backend's default location.
func Open(path string) (*Adapter, error) {
	kind := os.Getenv("TOPIKPAL_STORE")

	switch kind {
	case "", "sqlite":
		if path == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		backend, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return NewAdapter(backend), nil

	case "json":
		if path == "" {
			p, err := DefaultFilePath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		backend, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return NewAdapter(backend), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q (want sqlite or json)", kind)
	}
}
