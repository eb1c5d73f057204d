// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"errors"
	"os"
)

// CreateSample writes the default configuration to path.
func CreateSample(path string) error {
	sample := Default()
	sample.OutputDir = "./renders"
	raw, err := json.MarshalIndent(sample, "", "    ")
	if err != nil {
		return errors.Join(errors.New("could not marshal sample config"), err)
	}
	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return errors.Join(errors.New("could not write sample config file"), err)
	}
	return nil
}
