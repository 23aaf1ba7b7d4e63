package kube

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/internal/logging"
)

// ObjectStore implements objstore.ObjectStore on namespaces, secrets, config
// maps and ingresses of a cluster. Replace is unconditional: the current
// resourceVersion is read and reused, so the last writer wins.
type ObjectStore struct {
	Client *Client
	// IngressClass is set as spec.ingressClassName on ingresses when non-empty.
	IngressClass string
}

var _ objstore.ObjectStore = (*ObjectStore)(nil)

// NewObjectStore returns an ObjectStore backed by c.
func NewObjectStore(c *Client, ingressClass string) *ObjectStore {
	return &ObjectStore{Client: c, IngressClass: ingressClass}
}

// mapError translates API errors the entity store interprets.
func mapError(err error, kind objstore.StorageKind, namespace, name string) error {
	switch {
	case err == nil:
		return nil
	case apierrors.IsAlreadyExists(err):
		return fmt.Errorf("%w: %s %s/%s", objstore.ErrAlreadyExists, kind, namespace, name)
	case apierrors.IsNotFound(err):
		return fmt.Errorf("%w: %s %s/%s", objstore.ErrNotFound, kind, namespace, name)
	}
	return fmt.Errorf("%s %s/%s: %w", kind, namespace, name, err)
}

func (s *ObjectStore) List(ctx context.Context, kind objstore.StorageKind, sel objstore.Selector) ([]*objstore.Object, error) {
	cs, err := s.Client.clientset()
	if err != nil {
		return nil, err
	}
	opts := metav1.ListOptions{LabelSelector: sel.String()}
	var out []*objstore.Object
	switch kind {
	case objstore.Namespace:
		list, err := cs.CoreV1().Namespaces().List(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("list namespaces: %w", err)
		}
		for i := range list.Items {
			out = append(out, fromNamespace(&list.Items[i]))
		}
	case objstore.Secret:
		list, err := cs.CoreV1().Secrets(metav1.NamespaceAll).List(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("list secrets: %w", err)
		}
		for i := range list.Items {
			out = append(out, fromSecret(&list.Items[i]))
		}
	case objstore.ConfigMap:
		list, err := cs.CoreV1().ConfigMaps(metav1.NamespaceAll).List(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("list configmaps: %w", err)
		}
		for i := range list.Items {
			out = append(out, fromConfigMap(&list.Items[i]))
		}
	case objstore.Ingress:
		list, err := cs.NetworkingV1().Ingresses(metav1.NamespaceAll).List(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("list ingresses: %w", err)
		}
		for i := range list.Items {
			out = append(out, fromIngress(&list.Items[i]))
		}
	default:
		return nil, fmt.Errorf("unsupported storage kind %q", kind)
	}
	return out, nil
}

func (s *ObjectStore) Create(ctx context.Context, namespace string, obj *objstore.Object) (*objstore.Object, error) {
	cs, err := s.Client.clientset()
	if err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx).With("kind", obj.Kind, "ns", namespace, "name", obj.Name)
	msgSym := "KubeObjectStore:Create"

	var out *objstore.Object
	switch obj.Kind {
	case objstore.Namespace:
		ns := toNamespace(obj)
		if ns, err = cs.CoreV1().Namespaces().Create(ctx, ns, metav1.CreateOptions{}); err == nil {
			out = fromNamespace(ns)
		}
	case objstore.Secret:
		secret, cerr := toSecret(obj, namespace)
		if cerr != nil {
			return nil, cerr
		}
		if secret, err = cs.CoreV1().Secrets(namespace).Create(ctx, secret, metav1.CreateOptions{}); err == nil {
			out = fromSecret(secret)
		}
	case objstore.ConfigMap:
		cm := toConfigMap(obj, namespace)
		if cm, err = cs.CoreV1().ConfigMaps(namespace).Create(ctx, cm, metav1.CreateOptions{}); err == nil {
			out = fromConfigMap(cm)
		}
	case objstore.Ingress:
		ing := toIngress(obj, namespace, s.IngressClass)
		if ing, err = cs.NetworkingV1().Ingresses(namespace).Create(ctx, ing, metav1.CreateOptions{}); err == nil {
			out = fromIngress(ing)
		}
	default:
		return nil, fmt.Errorf("unsupported storage kind %q", obj.Kind)
	}
	if err != nil {
		logger.Debug(ctx, msgSym+"/efail", "err", err)
		return nil, mapError(err, obj.Kind, namespace, obj.Name)
	}
	logger.Debug(ctx, msgSym+"/eok")
	return out, nil
}

func (s *ObjectStore) Replace(ctx context.Context, namespace, name string, obj *objstore.Object) (*objstore.Object, error) {
	cs, err := s.Client.clientset()
	if err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx).With("kind", obj.Kind, "ns", namespace, "name", name)
	msgSym := "KubeObjectStore:Replace"

	// The current object supplies resourceVersion and server-owned metadata.
	var out *objstore.Object
	switch obj.Kind {
	case objstore.Namespace:
		cur, gerr := cs.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})
		if gerr != nil {
			return nil, mapError(gerr, obj.Kind, "", name)
		}
		next := cur.DeepCopy()
		next.Labels, next.Annotations = obj.Labels, obj.Annotations
		if next, err = cs.CoreV1().Namespaces().Update(ctx, next, metav1.UpdateOptions{}); err == nil {
			out = fromNamespace(next)
		}
	case objstore.Secret:
		cur, gerr := cs.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
		if gerr != nil {
			return nil, mapError(gerr, obj.Kind, namespace, name)
		}
		next, cerr := toSecret(obj, namespace)
		if cerr != nil {
			return nil, cerr
		}
		next.Name = name
		keepServerMeta(&next.ObjectMeta, &cur.ObjectMeta)
		if next, err = cs.CoreV1().Secrets(namespace).Update(ctx, next, metav1.UpdateOptions{}); err == nil {
			out = fromSecret(next)
		}
	case objstore.ConfigMap:
		cur, gerr := cs.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
		if gerr != nil {
			return nil, mapError(gerr, obj.Kind, namespace, name)
		}
		next := toConfigMap(obj, namespace)
		next.Name = name
		keepServerMeta(&next.ObjectMeta, &cur.ObjectMeta)
		if next, err = cs.CoreV1().ConfigMaps(namespace).Update(ctx, next, metav1.UpdateOptions{}); err == nil {
			out = fromConfigMap(next)
		}
	case objstore.Ingress:
		cur, gerr := cs.NetworkingV1().Ingresses(namespace).Get(ctx, name, metav1.GetOptions{})
		if gerr != nil {
			return nil, mapError(gerr, obj.Kind, namespace, name)
		}
		next := toIngress(obj, namespace, s.IngressClass)
		next.Name = name
		keepServerMeta(&next.ObjectMeta, &cur.ObjectMeta)
		if next, err = cs.NetworkingV1().Ingresses(namespace).Update(ctx, next, metav1.UpdateOptions{}); err == nil {
			out = fromIngress(next)
		}
	default:
		return nil, fmt.Errorf("unsupported storage kind %q", obj.Kind)
	}
	if err != nil {
		logger.Debug(ctx, msgSym+"/efail", "err", err)
		return nil, mapError(err, obj.Kind, namespace, name)
	}
	logger.Debug(ctx, msgSym+"/eok")
	return out, nil
}

func keepServerMeta(next, cur *metav1.ObjectMeta) {
	next.ResourceVersion = cur.ResourceVersion
	next.UID = cur.UID
	next.CreationTimestamp = cur.CreationTimestamp
	next.OwnerReferences = cur.OwnerReferences
	next.Finalizers = cur.Finalizers
}

func (s *ObjectStore) Delete(ctx context.Context, kind objstore.StorageKind, namespace, name string) error {
	cs, err := s.Client.clientset()
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx).With("kind", kind, "ns", namespace, "name", name)
	msgSym := "KubeObjectStore:Delete"
	propagation := metav1.DeletePropagationBackground
	opts := metav1.DeleteOptions{PropagationPolicy: &propagation}

	switch kind {
	case objstore.Namespace:
		err = cs.CoreV1().Namespaces().Delete(ctx, name, opts)
	case objstore.Secret:
		err = cs.CoreV1().Secrets(namespace).Delete(ctx, name, opts)
	case objstore.ConfigMap:
		err = cs.CoreV1().ConfigMaps(namespace).Delete(ctx, name, opts)
	case objstore.Ingress:
		err = cs.NetworkingV1().Ingresses(namespace).Delete(ctx, name, opts)
	default:
		return fmt.Errorf("unsupported storage kind %q", kind)
	}
	if err != nil {
		logger.Info(ctx, msgSym+"/efail", "err", err)
		return mapError(err, kind, namespace, name)
	}
	logger.Info(ctx, msgSym+"/eok")
	return nil
}
