package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shipmight/shipmight/internal/naming"
)

// AppChartFieldType is the declared type of one app value.
type AppChartFieldType string

const (
	FieldText           AppChartFieldType = "text"
	FieldNumber         AppChartFieldType = "number"
	FieldBoolean        AppChartFieldType = "boolean"
	FieldRegistrySelect AppChartFieldType = "registry-select"
	FieldFileMount      AppChartFieldType = "file-mount"
)

func (t AppChartFieldType) valid() bool {
	switch t {
	case FieldText, FieldNumber, FieldBoolean, FieldRegistrySelect, FieldFileMount:
		return true
	}
	return false
}

// AppChartField declares one attribute an app built from the chart may carry.
type AppChartField struct {
	Name     string            `json:"name" yaml:"name"`
	Label    string            `json:"label,omitempty" yaml:"label,omitempty"`
	Type     AppChartFieldType `json:"type" yaml:"type"`
	Required bool              `json:"required,omitempty" yaml:"required,omitempty"`
}

// AppChart declares the field set of app values. Templating the chart into
// workloads happens outside this module.
type AppChart struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Fields    []AppChartField `json:"fields"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Field returns the field declaration called name.
func (c *AppChart) Field(name string) (AppChartField, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return AppChartField{}, false
}

// ValidateFields checks the chart's own declaration.
func (c *AppChart) ValidateFields() error {
	seen := map[string]bool{}
	for _, f := range c.Fields {
		if f.Name == "" {
			return Invalidf("app chart field name must not be empty")
		}
		if seen[f.Name] {
			return Invalidf("app chart field %q declared twice", f.Name)
		}
		seen[f.Name] = true
		if !f.Type.valid() {
			return Invalidf("app chart field %q has unknown type %q", f.Name, f.Type)
		}
	}
	return nil
}

// ValidateValues rejects values outside the declared field set, missing
// required fields and values of the wrong shape.
func (c *AppChart) ValidateValues(values map[string]any) error {
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		f, ok := c.Field(name)
		if !ok {
			return Invalidf("value %q is not declared by app chart %q", name, c.ID)
		}
		if err := checkValue(f, values[name]); err != nil {
			return err
		}
	}
	for _, f := range c.Fields {
		if !f.Required {
			continue
		}
		if v, ok := values[f.Name]; !ok || v == nil || v == "" {
			return Invalidf("value %q is required", f.Name)
		}
	}
	return nil
}

func checkValue(f AppChartField, v any) error {
	if v == nil {
		return nil
	}
	switch f.Type {
	case FieldText:
		if _, ok := v.(string); !ok {
			return Invalidf("value %q must be a string", f.Name)
		}
	case FieldRegistrySelect:
		id, ok := v.(string)
		if !ok {
			return Invalidf("value %q must be a registry id string", f.Name)
		}
		if id == "" {
			return nil
		}
		if err := naming.ValidateID(id); err != nil {
			return Invalidf("value %q: registry %v", f.Name, err)
		}
	case FieldNumber:
		switch v.(type) {
		case float64, float32, int, int32, int64:
		default:
			return Invalidf("value %q must be a number", f.Name)
		}
	case FieldBoolean:
		if _, ok := v.(bool); !ok {
			return Invalidf("value %q must be a boolean", f.Name)
		}
	case FieldFileMount:
		mounts, err := FileMounts(v)
		if err != nil {
			return Invalidf("value %q must be a list of file mounts: %v", f.Name, err)
		}
		for _, m := range mounts {
			if m.FileID == "" || m.MountPath == "" {
				return Invalidf("value %q has a file mount without fileId or mountPath", f.Name)
			}
			if err := naming.ValidateID(m.FileID); err != nil {
				return Invalidf("value %q: file %v", f.Name, err)
			}
		}
	}
	return nil
}

// FileMounts converts a file-mount typed value into its structured form.
func FileMounts(v any) ([]FileMount, error) {
	if v == nil {
		return nil, nil
	}
	if ms, ok := v.([]FileMount); ok {
		return ms, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []FileMount
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode file mounts: %w", err)
	}
	return out, nil
}

// RegistryIDs returns the registry ids referenced by registry-select values.
func (c *AppChart) RegistryIDs(values map[string]any) []string {
	var ids []string
	for _, f := range c.Fields {
		if f.Type != FieldRegistrySelect {
			continue
		}
		if s, ok := values[f.Name].(string); ok && s != "" {
			ids = append(ids, s)
		}
	}
	return ids
}

// FileIDs returns the file ids referenced by file-mount values.
func (c *AppChart) FileIDs(values map[string]any) []string {
	var ids []string
	for _, f := range c.Fields {
		if f.Type != FieldFileMount {
			continue
		}
		mounts, err := FileMounts(values[f.Name])
		if err != nil {
			continue
		}
		for _, m := range mounts {
			if m.FileID != "" {
				ids = append(ids, m.FileID)
			}
		}
	}
	return ids
}
