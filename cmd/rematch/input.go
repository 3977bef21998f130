// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/rematch/iou"
	"gopkg.in/yaml.v3"
)

// inputValidate checks decoded documents; shared by all commands.
var inputValidate = validator.New()

// matrixDoc is the input of `rematch match`. JSON is accepted too since it
// is a subset of YAML.
type matrixDoc struct {
	Matrix   [][]float64 `yaml:"matrix" validate:"required,min=1,dive,min=1"`
	Axis     string      `yaml:"axis" validate:"omitempty,oneof=rows row columns column cols col 0 1"`
	Limited  *bool       `yaml:"limited"`
	Minimize *bool       `yaml:"minimize"`
}

// boxDoc is the input of `rematch iou`: detections become rows, tracks columns.
type boxDoc struct {
	Detections []iou.Box `yaml:"detections" validate:"required,min=1"`
	Tracks     []iou.Box `yaml:"tracks" validate:"required,min=1"`
	Limited    *bool     `yaml:"limited"`
}

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// decodeDoc unmarshals raw into dst (a pointer to a doc struct) and validates it.
func decodeDoc(raw []byte, dst any) error {
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	if err := inputValidate.Struct(dst); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

func loadMatrixDoc(path string, stdin io.Reader) (*matrixDoc, error) {
	raw, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	var doc matrixDoc
	if err = decodeDoc(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func loadBoxDoc(path string, stdin io.Reader) (*boxDoc, error) {
	raw, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	var doc boxDoc
	if err = decodeDoc(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
