package entity

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/shipmight/shipmight/adapters/store/objstore"
)

// newObject returns an object carrying the managed-by label and empty maps.
func newObject(kind objstore.StorageKind, namespace, name string) *objstore.Object {
	return &objstore.Object{
		Kind:        kind,
		Namespace:   namespace,
		Name:        name,
		Labels:      map[string]string{LabelManagedBy: ManagedBy},
		Annotations: map[string]string{},
		Data:        map[string]string{},
	}
}

func putJSON(obj *objstore.Object, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	obj.Data[key] = base64.StdEncoding.EncodeToString(b)
	return nil
}

// getJSON leaves v untouched when key is absent.
func getJSON(obj *objstore.Object, key string, v any) error {
	s, ok := obj.Data[key]
	if !ok {
		return nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode %s of %s %s/%s: %w", key, obj.Kind, obj.Namespace, obj.Name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s of %s %s/%s: %w", key, obj.Kind, obj.Namespace, obj.Name, err)
	}
	return nil
}

// putBytes skips empty values so optional secrets stay absent.
func putBytes(obj *objstore.Object, key string, b []byte) {
	if len(b) == 0 {
		return
	}
	obj.Data[key] = base64.StdEncoding.EncodeToString(b)
}

func getBytes(obj *objstore.Object, key string) ([]byte, error) {
	s, ok := obj.Data[key]
	if !ok {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode %s of %s %s/%s: %w", key, obj.Kind, obj.Namespace, obj.Name, err)
	}
	return b, nil
}

func getString(obj *objstore.Object, key string) (string, error) {
	b, err := getBytes(obj, key)
	return string(b), err
}

// putAnnotation skips empty values.
func putAnnotation(obj *objstore.Object, key, value string) {
	if value != "" {
		obj.Annotations[key] = value
	}
}

func putLabel(obj *objstore.Object, key, value string) {
	if value != "" {
		obj.Labels[key] = value
	}
}
