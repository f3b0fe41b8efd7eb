// SPDX-License-Identifier: MIT
// Package: conelab/builder
//
// settings.go - the graph-generation configuration surface.

package builder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EdgeWeightType selects how edge weights are drawn.
type EdgeWeightType string

const (
	// Fixed gives every edge exactly Settings.EdgeWeight.
	Fixed EdgeWeightType = "fixed"
	// Random draws each weight uniformly from [0, Settings.EdgeWeight].
	Random EdgeWeightType = "random"
)

// Valid reports whether t is a known weight type.
func (t EdgeWeightType) Valid() bool {
	return t == Fixed || t == Random
}

// Settings is the sole configuration of a build.
type Settings struct {
	IniCnt         int            `yaml:"ini_cnt" json:"ini_cnt" validate:"gte=1"`
	FinCnt         int            `yaml:"fin_cnt" json:"fin_cnt" validate:"gte=0"`
	TotalCnt       int            `yaml:"total_cnt" json:"total_cnt" validate:"gte=1"`
	MaxOutDegree   int            `yaml:"max_out_degree" json:"max_out_degree" validate:"gte=2"`
	NoTwinEdges    bool           `yaml:"no_twin_edges" json:"no_twin_edges"`
	EdgeWeightType EdgeWeightType `yaml:"edge_weight_type" json:"edge_weight_type" validate:"weighttype"`
	EdgeWeight     float64        `yaml:"edge_weight" json:"edge_weight" validate:"gte=0"`
	DiamondFilter  bool           `yaml:"diamond_filter" json:"diamond_filter"`
}

// Default values used by DefaultSettings.
const (
	DefaultIniCnt       = 1
	DefaultFinCnt       = 1
	DefaultTotalCnt     = 20
	DefaultMaxOutDegree = 3
)

// DefaultSettings returns a small valid configuration.
func DefaultSettings() Settings {
	return Settings{
		IniCnt:         DefaultIniCnt,
		FinCnt:         DefaultFinCnt,
		TotalCnt:       DefaultTotalCnt,
		MaxOutDegree:   DefaultMaxOutDegree,
		NoTwinEdges:    true,
		EdgeWeightType: Fixed,
		EdgeWeight:     DefaultEdgeWeight,
	}
}

// settingsValidate is initialised in init() with the custom validators.
var settingsValidate *validator.Validate

func init() {
	settingsValidate = validator.New()
	_ = settingsValidate.RegisterValidation("weighttype", func(fl validator.FieldLevel) bool {
		return EdgeWeightType(fl.Field().String()).Valid()
	})
}

// Validate checks every field and reports all violations at once.
// The returned error wraps ErrInvalidSettings.
func (s Settings) Validate() error {
	err := settingsValidate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s=%v fails %s%s", fe.Field(), fe.Value(), fe.Tag(), paramSuffix(fe.Param())))
	}

	return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(fields, "; "))
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

// WeightFn returns the weight generator described by EdgeWeightType and
// EdgeWeight. Settings must be valid.
func (s Settings) WeightFn() WeightFn {
	if s.EdgeWeightType == Random {
		return UniformWeightFn(0, s.EdgeWeight)
	}
	return ConstantWeightFn(s.EdgeWeight)
}

// LoadSettings decodes a YAML document on top of DefaultSettings, so absent
// keys keep their defaults, and validates the result. Unknown keys are
// rejected.
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("LoadSettings: %w: %v", ErrLoadSettings, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("LoadSettings: %w", err)
	}

	return s, nil
}

// LoadSettingsFile reads and validates the YAML settings file at path.
func LoadSettingsFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("LoadSettingsFile: %w: %v", ErrLoadSettings, err)
	}
	defer f.Close()

	return LoadSettings(f)
}
