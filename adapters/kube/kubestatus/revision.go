package kubestatus

import (
	"sort"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/shipmight/shipmight/domain/model"
)

const (
	// LabelPodTemplateHash ties pods to the replica set that created them.
	LabelPodTemplateHash = appsv1.DefaultDeploymentUniqueLabelKey
	// AnnotationRevision is set on replica sets by the deployment controller.
	AnnotationRevision = "deployment.kubernetes.io/revision"
)

// Revisions rolls replica sets and their pods up into deployment revisions,
// newest first. Pods are matched by namespace and pod-template-hash.
func Revisions(replicaSets []appsv1.ReplicaSet, pods []corev1.Pod) []*model.Deployment {
	out := make([]*model.Deployment, 0, len(replicaSets))
	for i := range replicaSets {
		rs := &replicaSets[i]
		d := &model.Deployment{
			ID:            rs.Name,
			ProjectID:     rs.Namespace,
			Revision:      rs.Annotations[AnnotationRevision],
			Replicas:      rs.Status.Replicas,
			ReadyReplicas: rs.Status.ReadyReplicas,
			CreatedAt:     rs.CreationTimestamp.Time,
		}
		d.PodStatuses = PodStatuses(revisionPods(rs, pods))
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func revisionPods(rs *appsv1.ReplicaSet, pods []corev1.Pod) []*corev1.Pod {
	hash := rs.Labels[LabelPodTemplateHash]
	if hash == "" {
		return nil
	}
	var out []*corev1.Pod
	for i := range pods {
		p := &pods[i]
		if p.Namespace == rs.Namespace && p.Labels[LabelPodTemplateHash] == hash {
			out = append(out, p)
		}
	}
	return out
}
