package objstore

import (
	"testing"

	"k8s.io/apimachinery/pkg/labels"
)

func TestSelectorString(t *testing.T) {
	cases := []struct {
		name string
		sel  Selector
		want string
	}{
		{name: "empty", sel: Selector{}, want: ""},
		{name: "existence", sel: Selector{Has("shipmight.com/app-id")}, want: "shipmight.com/app-id"},
		{name: "mixed", sel: Selector{Has("shipmight.com/app-id"), Eq("shipmight.com/project-id", "p-abcde")}, want: "shipmight.com/app-id,shipmight.com/project-id=p-abcde"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sel.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
			if err := tc.sel.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestSelectorMatches(t *testing.T) {
	set := map[string]string{
		"shipmight.com/app-id":     "web-abcde",
		"shipmight.com/project-id": "p-abcde",
		"app.shipmight.com/linked-registry-id.hub-x1y2z": "true",
	}
	cases := []struct {
		name string
		sel  Selector
		want bool
	}{
		{name: "empty matches all", sel: nil, want: true},
		{name: "exists", sel: Selector{Has("shipmight.com/app-id")}, want: true},
		{name: "missing key", sel: Selector{Has("shipmight.com/file-id")}, want: false},
		{name: "exact", sel: Selector{Eq("shipmight.com/app-id", "web-abcde")}, want: true},
		{name: "exact mismatch", sel: Selector{Eq("shipmight.com/app-id", "web-zzzzz")}, want: false},
		{name: "and", sel: Selector{Has("shipmight.com/app-id"), Eq("app.shipmight.com/linked-registry-id.hub-x1y2z", "true")}, want: true},
		{name: "and mismatch", sel: Selector{Has("shipmight.com/app-id"), Eq("shipmight.com/project-id", "p-zzzzz")}, want: false},
		{name: "invalid key matches nothing", sel: Selector{Has("bad key")}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sel.Matches(set); got != tc.want {
				t.Fatalf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectorValidateRejectsBadKey(t *testing.T) {
	if err := (Selector{Eq("bad key", "x")}).Validate(); err == nil {
		t.Fatalf("expected error for invalid key")
	}
}

func TestSelectorCompile(t *testing.T) {
	sel := Selector{Eq("shipmight.com/project-id", "p-abcde"), Has("app.shipmight.com/linked-file-id.conf-x1y2z")}
	ls, err := sel.Compile()
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	set := map[string]string{
		"shipmight.com/project-id":                    "p-abcde",
		"app.shipmight.com/linked-file-id.conf-x1y2z": "true",
	}
	if got, want := ls.Matches(labels.Set(set)), sel.Matches(set); got != want || !got {
		t.Fatalf("compiled Matches() = %v, Selector.Matches() = %v, want both true", got, want)
	}
	delete(set, "app.shipmight.com/linked-file-id.conf-x1y2z")
	if ls.Matches(labels.Set(set)) {
		t.Fatalf("compiled selector matched set without required key")
	}
	if _, err := (Selector{Eq("shipmight.com/project-id", "bad value!")}).Compile(); err == nil {
		t.Fatalf("expected error for invalid value")
	}
}

func TestObjectDeepCopy(t *testing.T) {
	o := &Object{Kind: Ingress, Name: "a", Labels: map[string]string{"k": "v"}, Route: &Route{Host: "h"}}
	c := o.DeepCopy()
	c.Labels["k"] = "changed"
	c.Route.Host = "changed"
	if o.Labels["k"] != "v" || o.Route.Host != "h" {
		t.Fatalf("DeepCopy shares state with original")
	}
}
