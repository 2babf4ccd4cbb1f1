package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

func writeSummaryFile(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
