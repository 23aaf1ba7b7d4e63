package kubestatus

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/shipmight/shipmight/domain/model"
)

func replicaSet(name, hash, revision string, created time.Time, replicas, ready int32) appsv1.ReplicaSet {
	return appsv1.ReplicaSet{
		ObjectMeta: metav1.ObjectMeta{
			Name:              name,
			Namespace:         "p1",
			Labels:            map[string]string{LabelPodTemplateHash: hash},
			Annotations:       map[string]string{AnnotationRevision: revision},
			CreationTimestamp: metav1.NewTime(created),
		},
		Status: appsv1.ReplicaSetStatus{Replicas: replicas, ReadyReplicas: ready},
	}
}

func hashPod(name, namespace, hash string, phase corev1.PodPhase) corev1.Pod {
	p := pod(name, phase)
	p.Namespace = namespace
	p.Labels = map[string]string{LabelPodTemplateHash: hash}
	return *p
}

func TestRevisions(t *testing.T) {
	rs := []appsv1.ReplicaSet{
		replicaSet("web-aaa", "aaa", "1", t0, 0, 0),
		replicaSet("web-bbb", "bbb", "2", t0.Add(time.Hour), 2, 1),
	}
	pods := []corev1.Pod{
		hashPod("web-bbb-2", "p1", "bbb", corev1.PodPending),
		hashPod("web-bbb-1", "p1", "bbb", corev1.PodRunning),
		hashPod("web-bbb-x", "p2", "bbb", corev1.PodRunning),
		hashPod("api-ccc-1", "p1", "ccc", corev1.PodRunning),
	}
	got := Revisions(rs, pods)
	want := []*model.Deployment{
		{
			ID: "web-bbb", ProjectID: "p1", Revision: "2", Replicas: 2, ReadyReplicas: 1,
			CreatedAt: t0.Add(time.Hour),
			PodStatuses: []model.PodStatus{
				{Name: "web-bbb-1", Status: model.PodRunning},
				{Name: "web-bbb-2", Status: model.PodPending},
			},
		},
		{ID: "web-aaa", ProjectID: "p1", Revision: "1", CreatedAt: t0, PodStatuses: []model.PodStatus{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Revisions mismatch (-want +got):\n%s", diff)
	}
}
