package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type validator interface {
	Validate() error
}

func LoadRangeCount(path string) (*RangeCountConfig, error) {
	var c RangeCountConfig
	if err := load(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func LoadOrderStat(path string) (*OrderStatConfig, error) {
	var c OrderStatConfig
	if err := load(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func load(path string, dst validator) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: wrong config file path: %v", ErrConfiguration, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: wrong config file path: %s is a directory", ErrConfiguration, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = DecodeYAML(raw, dst)
	default:
		err = DecodeJSON(raw, dst)
	}
	if err != nil {
		return err
	}
	return nil
}

// DecodeJSON decodes and validates a JSON document. Unknown fields are rejected.
func DecodeJSON(raw []byte, dst validator) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed json: %v", ErrConfiguration, err)
	}
	return dst.Validate()
}

// DecodeYAML decodes and validates a YAML document. Unknown fields are rejected.
func DecodeYAML(raw []byte, dst validator) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed yaml: %v", ErrConfiguration, err)
	}
	return dst.Validate()
}
