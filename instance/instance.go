package instance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/knapsack"
)

var (
	// ErrUnknownFormat indicates a format name or file extension we cannot decode.
	ErrUnknownFormat = errors.New("instance: unknown format")

	// ErrBadTuple indicates an item tuple with a negative component.
	ErrBadTuple = errors.New("instance: item tuple components must be non-negative")
)

// Format names a serialization.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Instance is the external form of a knapsack problem.
type Instance struct {
	Capacity  int64      `json:"capacity" yaml:"capacity"`
	Tolerance float64    `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	Items     [][3]int64 `json:"items" yaml:"items"`
}

// FromItems builds an Instance from solver items.
func FromItems(items []knapsack.Item, capacity int64) *Instance {
	inst := &Instance{Capacity: capacity, Items: make([][3]int64, len(items))}
	for i, it := range items {
		inst.Items[i] = [3]int64{int64(it.Index), it.Value, it.Weight}
	}

	return inst
}

// Items converts the tuples into solver items. Index/value/weight must be
// non-negative; the remaining checks (index range, uniqueness, overflow) are
// the solvers' own.
func (in *Instance) Items() ([]knapsack.Item, error) {
	items := make([]knapsack.Item, len(in.Items))
	for i, t := range in.Items {
		if t[0] < 0 || t[1] < 0 || t[2] < 0 {
			return nil, fmt.Errorf("%w: item #%d = %v", ErrBadTuple, i, t)
		}
		items[i] = knapsack.Item{Index: int(t[0]), Value: t[1], Weight: t[2]}
	}

	return items, nil
}

// Decode reads one instance from r.
func Decode(r io.Reader, f Format) (*Instance, error) {
	var (
		inst Instance
		err  error
	)
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&inst)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&inst)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}

	return &inst, nil
}

// Encode writes v (an Instance, a Report or a slice of either) to w.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Load reads the instance at path, choosing the codec from the extension.
// A ".zst" suffix is decompressed first.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open instance: %w", err)
	}
	defer f.Close()

	var (
		r    io.Reader = f
		name           = path
	)
	if strings.EqualFold(filepath.Ext(name), ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(name), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return Decode(r, format)
}

// Save writes inst to path, choosing the codec from the extension and
// compressing with zstd when the path ends in ".zst".
func Save(path string, inst *Instance) (err error) {
	name := path
	compressed := strings.EqualFold(filepath.Ext(name), ".zst")
	if compressed {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(name), "."))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !compressed {
		return Encode(f, format, inst)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if err = Encode(zw, format, inst); err != nil {
		zw.Close()

		return err
	}

	return zw.Close()
}
