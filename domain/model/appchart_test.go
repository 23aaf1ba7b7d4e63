package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testChart() *AppChart {
	return &AppChart{
		ID:   "web-abcde",
		Name: "Web",
		Fields: []AppChartField{
			{Name: "image", Type: FieldText, Required: true},
			{Name: "replicas", Type: FieldNumber},
			{Name: "public", Type: FieldBoolean},
			{Name: "registry", Type: FieldRegistrySelect},
			{Name: "files", Type: FieldFileMount},
		},
	}
}

func TestValidateValues(t *testing.T) {
	cases := []struct {
		name    string
		values  map[string]any
		wantErr bool
	}{
		{name: "minimal", values: map[string]any{"image": "nginx"}},
		{name: "all fields", values: map[string]any{
			"image":    "nginx",
			"replicas": float64(2),
			"public":   true,
			"registry": "hub-x1y2z",
			"files":    []any{map[string]any{"fileId": "conf-a1b2c", "mountPath": "/etc/conf"}},
		}},
		{name: "undeclared", values: map[string]any{"image": "nginx", "extra": "x"}, wantErr: true},
		{name: "missing required", values: map[string]any{"replicas": float64(1)}, wantErr: true},
		{name: "empty required", values: map[string]any{"image": ""}, wantErr: true},
		{name: "wrong number", values: map[string]any{"image": "nginx", "replicas": "two"}, wantErr: true},
		{name: "wrong boolean", values: map[string]any{"image": "nginx", "public": "yes"}, wantErr: true},
		{name: "bad file mount", values: map[string]any{"image": "nginx", "files": []any{map[string]any{"fileId": "x"}}}, wantErr: true},
		{name: "file mount not a list", values: map[string]any{"image": "nginx", "files": "x"}, wantErr: true},
		{name: "empty registry", values: map[string]any{"image": "nginx", "registry": ""}},
		{name: "registry id not a label", values: map[string]any{"image": "nginx", "registry": "Not A Valid/ID"}, wantErr: true},
		{name: "file id not a label", values: map[string]any{"image": "nginx", "files": []any{map[string]any{"fileId": "conf/a", "mountPath": "/etc/conf"}}}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := testChart().ValidateValues(tc.values)
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateFields(t *testing.T) {
	c := testChart()
	if err := c.ValidateFields(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Fields = append(c.Fields, AppChartField{Name: "image", Type: FieldText})
	if err := c.ValidateFields(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected duplicate field error, got %v", err)
	}
	c.Fields = []AppChartField{{Name: "x", Type: "color"}}
	if err := c.ValidateFields(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestReferencedIDs(t *testing.T) {
	values := map[string]any{
		"image":    "nginx",
		"registry": "hub-x1y2z",
		"files": []any{
			map[string]any{"fileId": "conf-a1b2c", "mountPath": "/etc/a"},
			map[string]any{"fileId": "key-d3e4f", "mountPath": "/etc/b"},
		},
	}
	c := testChart()
	if diff := cmp.Diff([]string{"hub-x1y2z"}, c.RegistryIDs(values)); diff != "" {
		t.Errorf("RegistryIDs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"conf-a1b2c", "key-d3e4f"}, c.FileIDs(values)); diff != "" {
		t.Errorf("FileIDs mismatch (-want +got):\n%s", diff)
	}
	if got := c.RegistryIDs(map[string]any{"registry": ""}); len(got) != 0 {
		t.Errorf("empty registry selection must not link, got %v", got)
	}
}
