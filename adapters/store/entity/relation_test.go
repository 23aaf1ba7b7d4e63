package entity

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/internal/naming"
)

type owner struct{ name string }

func ownerObject(name string, labels map[string]string) *objstore.Object {
	obj := newObject(objstore.Secret, "p", name)
	obj.Annotations["name"] = name
	for k, v := range labels {
		obj.Labels[k] = v
	}
	return obj
}

func decodeOwner(obj *objstore.Object) (*owner, error) {
	return &owner{name: obj.Annotations["name"]}, nil
}

func ownerName(o *owner) string { return o.name }

func TestRelationKeyFitsLongestID(t *testing.T) {
	id := strings.Repeat("a", naming.MaxIDLength)
	for _, rel := range []Relation{AppRegistry, AppFile} {
		key := rel.Key(id)
		if errs := validation.IsQualifiedName(key); len(errs) > 0 {
			t.Errorf("%s: %v", key, errs)
		}
		if err := (objstore.Selector{objstore.Has(key)}).Validate(); err != nil {
			t.Errorf("%s: %v", key, err)
		}
	}
}

func TestToLinkLabels(t *testing.T) {
	got := ToLinkLabels([]Link{
		{Relation: AppRegistry, TargetID: "r1"},
		{Relation: AppRegistry, TargetID: "r1"},
		{Relation: AppFile, TargetID: "f1"},
		{Relation: AppFile, TargetID: ""},
	})
	want := map[string]string{
		"app.shipmight.com/linked-registry-id.r1": "true",
		"app.shipmight.com/linked-file-id.f1":     "true",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestRelationTargetID(t *testing.T) {
	cases := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{"app.shipmight.com/linked-registry-id.hub-x1", "hub-x1", true},
		{"app.shipmight.com/linked-registry-id.", "", false},
		{"app.shipmight.com/linked-file-id.hub-x1", "", false},
		{"shipmight.com/registry-id", "", false},
	}
	for _, tc := range cases {
		id, ok := AppRegistry.TargetID(tc.key)
		if id != tc.wantID || ok != tc.wantOK {
			t.Errorf("TargetID(%q) = %q, %v; want %q, %v", tc.key, id, ok, tc.wantID, tc.wantOK)
		}
	}
}

func TestGroupByTarget(t *testing.T) {
	objs := []*objstore.Object{
		ownerObject("zeta", ToLinkLabels([]Link{{AppFile, "f1"}, {AppFile, "f1"}, {AppFile, "f2"}})),
		ownerObject("Alpha", ToLinkLabels([]Link{{AppFile, "f1"}})),
		ownerObject("beta", ToLinkLabels([]Link{{AppFile, "f1"}, {AppRegistry, "r1"}})),
		ownerObject("unlinked", nil),
		ownerObject("disabled", map[string]string{AppFile.Key("f1"): "false"}),
	}
	got, err := GroupByTarget(objs, AppFile, decodeOwner, ownerName)
	if err != nil {
		t.Fatalf("GroupByTarget: %v", err)
	}
	names := map[string][]string{}
	for id, owners := range got {
		for _, o := range owners {
			names[id] = append(names[id], o.name)
		}
	}
	want := map[string][]string{
		"f1": {"Alpha", "beta", "zeta"},
		"f2": {"zeta"},
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestHasAnyLink(t *testing.T) {
	objs := []*objstore.Object{
		ownerObject("a", ToLinkLabels([]Link{{AppRegistry, "r1"}})),
		ownerObject("b", map[string]string{AppRegistry.Key("r2"): "false"}),
	}
	if !HasAnyLink(objs, AppRegistry, "r1") {
		t.Error("expected link to r1")
	}
	if HasAnyLink(objs, AppRegistry, "r2") {
		t.Error("label with value false must not count as a link")
	}
	if HasAnyLink(objs, AppFile, "r1") {
		t.Error("link of another relation must not count")
	}
}
