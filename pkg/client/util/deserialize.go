package util

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

func BindYaml(filePath string, obj interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed opening file %s due to %s", filePath, err)
	}
	if err := yaml.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("failed to parse file %s because: %v", filePath, err)
	}
	return nil
}
