package entity

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shipmight/shipmight/adapters/store/objstore"
)

// Relation names a many-to-many link from an owner kind to a target kind.
// Links are stored as boolean labels on the owner object:
//
//	<owner>.shipmight.com/linked-<target>-id.<targetID> = "true"
type Relation struct {
	Owner  string
	Target string
}

var (
	AppRegistry = Relation{Owner: "app", Target: "registry"}
	AppFile     = Relation{Owner: "app", Target: "file"}
)

const linkValue = "true"

func (r Relation) prefix() string {
	return r.Owner + "." + LabelDomain + "/linked-" + r.Target + "-id."
}

// Key returns the label key linking to targetID.
func (r Relation) Key(targetID string) string {
	return r.prefix() + targetID
}

// TargetID extracts the target id from a link label key.
func (r Relation) TargetID(key string) (string, bool) {
	id, ok := strings.CutPrefix(key, r.prefix())
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Link is one owner-to-target reference.
type Link struct {
	Relation Relation
	TargetID string
}

// ToLinkLabels returns one label per distinct link.
func ToLinkLabels(links []Link) map[string]string {
	out := make(map[string]string, len(links))
	for _, l := range links {
		if l.TargetID == "" {
			continue
		}
		out[l.Relation.Key(l.TargetID)] = linkValue
	}
	return out
}

// HasAnyLink reports whether any object links to targetID.
func HasAnyLink(objs []*objstore.Object, rel Relation, targetID string) bool {
	key := rel.Key(targetID)
	for _, o := range objs {
		if o.Labels[key] == linkValue {
			return true
		}
	}
	return false
}

// GroupByTarget decodes owners and groups them by the targets they link to.
// Each group is sorted by display name, case-insensitively. An owner appears
// at most once per target.
func GroupByTarget[T any](objs []*objstore.Object, rel Relation, decode func(*objstore.Object) (*T, error), name func(*T) string) (map[string][]*T, error) {
	out := map[string][]*T{}
	for _, o := range objs {
		var owner *T
		for key, value := range o.Labels {
			if value != linkValue {
				continue
			}
			id, ok := rel.TargetID(key)
			if !ok {
				continue
			}
			if owner == nil {
				rec, err := decode(o)
				if err != nil {
					return nil, err
				}
				owner = rec
			}
			out[id] = append(out[id], owner)
		}
	}
	for _, group := range out {
		sortByName(group, name)
	}
	return out, nil
}

// sortByName orders items by a locale-aware, case-insensitive comparison.
// Items comparing equal keep their relative order.
func sortByName[T any](items []*T, name func(*T) string) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}
