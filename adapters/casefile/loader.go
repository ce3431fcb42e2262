// Package casefile loads load-case batches from case files.
// Two formats are supported: HCL (one "case" block per load case) and JSON
// (a params-style document with a "cases" array).
package casefile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"unity-check/core/types"
	"unity-check/internal/errors"
)

// Field defaults match the original case editor.
var (
	defaultVolume  = decimal.NewFromFloat(0.3)
	defaultDensity = decimal.NewFromInt(1000)
	defaultNorm    = types.NormA
)

// Load reads load cases from an .hcl or .json case file
func Load(path string) ([]types.LoadCase, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return LoadHCL(path)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, errors.Newf(errors.TypeParsing, "unsupported case file extension: %s", filepath.Ext(path))
	}
}

// hclCaseFile is the root HCL schema
type hclCaseFile struct {
	Cases []hclCase `hcl:"case,block"`
}

// hclCase is a single "case" block; omitted fields take editor defaults
type hclCase struct {
	Name    *string  `hcl:"name,optional"`
	Volume  *float64 `hcl:"volume,optional"`
	Density *int64   `hcl:"density,optional"`
	Norm    *string  `hcl:"norm,optional"`
}

// LoadHCL reads load cases from an HCL case file
func LoadHCL(path string) ([]types.LoadCase, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("reading case file", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, errors.Parsing("parsing case file", diags)
	}

	var parsed hclCaseFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Parsing("decoding case file", diags)
	}

	cases := make([]types.LoadCase, 0, len(parsed.Cases))
	for _, c := range parsed.Cases {
		lc := types.LoadCase{
			Volume:  defaultVolume,
			Density: defaultDensity,
			Norm:    defaultNorm,
		}
		if c.Name != nil {
			lc.Name = *c.Name
		}
		if c.Volume != nil {
			lc.Volume = decimal.NewFromFloat(*c.Volume)
		}
		if c.Density != nil {
			lc.Density = decimal.NewFromInt(*c.Density)
		}
		if c.Norm != nil {
			lc.Norm = types.Norm(*c.Norm)
		}
		cases = append(cases, lc)
	}
	return cases, nil
}

// jsonCaseFile is the params-style JSON schema
type jsonCaseFile struct {
	Cases []types.LoadCase `json:"cases"`
}

// LoadJSON reads load cases from a JSON case file
func LoadJSON(path string) ([]types.LoadCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("reading case file", err)
	}

	var parsed jsonCaseFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, errors.Parsing("decoding case file", err)
	}
	return parsed.Cases, nil
}
