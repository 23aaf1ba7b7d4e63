package kube

import (
	"encoding/base64"
	"fmt"
	"maps"

	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/shipmight/shipmight/adapters/store/objstore"
)

func objectMeta(obj *objstore.Object, namespace string) metav1.ObjectMeta {
	meta := metav1.ObjectMeta{
		Name:        obj.Name,
		Labels:      maps.Clone(obj.Labels),
		Annotations: maps.Clone(obj.Annotations),
	}
	if obj.Kind.Namespaced() {
		meta.Namespace = namespace
	}
	return meta
}

func fromMeta(kind objstore.StorageKind, meta *metav1.ObjectMeta) *objstore.Object {
	return &objstore.Object{
		Kind:        kind,
		Namespace:   meta.Namespace,
		Name:        meta.Name,
		Labels:      maps.Clone(meta.Labels),
		Annotations: maps.Clone(meta.Annotations),
		Data:        map[string]string{},
		CreatedAt:   meta.CreationTimestamp.Time,
	}
}

func toNamespace(obj *objstore.Object) *corev1.Namespace {
	return &corev1.Namespace{ObjectMeta: objectMeta(obj, "")}
}

func fromNamespace(ns *corev1.Namespace) *objstore.Object {
	return fromMeta(objstore.Namespace, &ns.ObjectMeta)
}

// toSecret stores payload values as raw bytes; the API server re-encodes them.
func toSecret(obj *objstore.Object, namespace string) (*corev1.Secret, error) {
	s := &corev1.Secret{
		ObjectMeta: objectMeta(obj, namespace),
		Type:       corev1.SecretTypeOpaque,
		Data:       make(map[string][]byte, len(obj.Data)),
	}
	for k, v := range obj.Data {
		b, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("secret %s/%s key %s: %w", namespace, obj.Name, k, err)
		}
		s.Data[k] = b
	}
	return s, nil
}

func fromSecret(s *corev1.Secret) *objstore.Object {
	obj := fromMeta(objstore.Secret, &s.ObjectMeta)
	for k, v := range s.Data {
		obj.Data[k] = base64.StdEncoding.EncodeToString(v)
	}
	return obj
}

// Config map values are kept as the base64 strings they arrive as.
func toConfigMap(obj *objstore.Object, namespace string) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		ObjectMeta: objectMeta(obj, namespace),
		Data:       maps.Clone(obj.Data),
	}
}

func fromConfigMap(cm *corev1.ConfigMap) *objstore.Object {
	obj := fromMeta(objstore.ConfigMap, &cm.ObjectMeta)
	maps.Copy(obj.Data, cm.Data)
	return obj
}

func toIngress(obj *objstore.Object, namespace, ingressClass string) *networkingv1.Ingress {
	ing := &networkingv1.Ingress{ObjectMeta: objectMeta(obj, namespace)}
	if ingressClass != "" {
		ing.Spec.IngressClassName = &ingressClass
	}
	r := obj.Route
	if r == nil {
		return ing
	}
	rule := networkingv1.IngressRule{Host: r.Host}
	if r.ServiceName != "" {
		pathType := networkingv1.PathTypePrefix
		path := r.Path
		if path == "" {
			path = "/"
		}
		rule.HTTP = &networkingv1.HTTPIngressRuleValue{
			Paths: []networkingv1.HTTPIngressPath{{
				Path:     path,
				PathType: &pathType,
				Backend: networkingv1.IngressBackend{
					Service: &networkingv1.IngressServiceBackend{
						Name: r.ServiceName,
						Port: networkingv1.ServiceBackendPort{Number: r.ServicePort},
					},
				},
			}},
		}
	}
	ing.Spec.Rules = []networkingv1.IngressRule{rule}
	if r.TLSSecretName != "" {
		ing.Spec.TLS = []networkingv1.IngressTLS{{Hosts: []string{r.Host}, SecretName: r.TLSSecretName}}
	}
	return ing
}

func fromIngress(ing *networkingv1.Ingress) *objstore.Object {
	obj := fromMeta(objstore.Ingress, &ing.ObjectMeta)
	if len(ing.Spec.Rules) == 0 {
		return obj
	}
	rule := ing.Spec.Rules[0]
	r := &objstore.Route{Host: rule.Host, Path: "/"}
	if rule.HTTP != nil && len(rule.HTTP.Paths) > 0 {
		p := rule.HTTP.Paths[0]
		r.Path = p.Path
		if svc := p.Backend.Service; svc != nil {
			r.ServiceName = svc.Name
			r.ServicePort = svc.Port.Number
		}
	}
	for _, tls := range ing.Spec.TLS {
		if tls.SecretName != "" {
			r.TLSSecretName = tls.SecretName
			break
		}
	}
	obj.Route = r
	return obj
}
