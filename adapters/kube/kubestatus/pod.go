// Package kubestatus derives the status vocabulary shown for app workloads from
// raw Kubernetes objects. Every function is pure; nothing here talks to a cluster.
package kubestatus

import (
	"fmt"
	"sort"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/shipmight/shipmight/domain/model"
)

// Container state reasons reported by the kubelet.
const (
	reasonImagePullBackOff  = "ImagePullBackOff"
	reasonErrImagePull      = "ErrImagePull"
	reasonContainerCreating = "ContainerCreating"
	reasonCrashLoopBackOff  = "CrashLoopBackOff"
	reasonError             = "Error"
)

// PodStatus returns the derived status of a single pod.
func PodStatus(pod *corev1.Pod) model.PodStatus {
	st := model.PodStatus{Name: pod.Name}
	switch pod.Status.Phase {
	case corev1.PodPending:
		st.Status = model.PodPending
		st.Message = pendingMessage(pod)
	case corev1.PodRunning:
		if msg := failureMessage(pod); msg != "" {
			st.Status = model.PodErrored
			st.Message = msg
		} else {
			st.Status = model.PodRunning
		}
	default:
		st.Status = model.PodUnknown
	}
	return st
}

// PodStatuses returns the derived status of every pod, ordered by pod name.
func PodStatuses(pods []*corev1.Pod) []model.PodStatus {
	sorted := append([]*corev1.Pod(nil), pods...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	out := make([]model.PodStatus, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, PodStatus(p))
	}
	return out
}

// waitingMessage describes a container stuck before start. Only image pulls
// and container creation are reported.
func waitingMessage(pod *corev1.Pod) string {
	for _, cs := range pod.Status.ContainerStatuses {
		w := cs.State.Waiting
		if w == nil {
			continue
		}
		switch w.Reason {
		case reasonImagePullBackOff, reasonErrImagePull:
			return fmt.Sprintf("Pulling image %s failed, retrying", cs.Image)
		case reasonContainerCreating:
			return "Container creating"
		}
	}
	return ""
}

func pendingMessage(pod *corev1.Pod) string {
	if msg := waitingMessage(pod); msg != "" {
		return msg
	}
	cond := unschedulable(pod)
	if cond == nil {
		return ""
	}
	msg := strings.ToLower(cond.Message)
	switch {
	case len(pod.Status.ContainerStatuses) == 0 && strings.Contains(msg, "insufficient memory"):
		return "Container cannot be created due to insufficient memory in cluster"
	case strings.Contains(msg, "insufficient cpu"):
		return "Container cannot be created due to insufficient CPU in cluster"
	}
	return "Container cannot be created"
}

func unschedulable(pod *corev1.Pod) *corev1.PodCondition {
	for i := range pod.Status.Conditions {
		c := &pod.Status.Conditions[i]
		if c.Type == corev1.PodScheduled && c.Status == corev1.ConditionFalse && c.Reason == corev1.PodReasonUnschedulable {
			return c
		}
	}
	return nil
}

// failureMessage inspects a running pod's containers in status order. Within a
// container a CrashLoopBackOff wait is checked after the terminated state and
// overrides its message; across containers the last one with a failure wins.
func failureMessage(pod *corev1.Pod) string {
	var msg string
	for _, cs := range pod.Status.ContainerStatuses {
		if t := cs.State.Terminated; t != nil && (t.Reason == reasonError || t.Reason == reasonCrashLoopBackOff) {
			msg = fmt.Sprintf("Container exited with code %d", t.ExitCode)
			if cs.RestartCount > 0 {
				msg += fmt.Sprintf(" (retry %d)", cs.RestartCount)
			}
			msg += ", retrying"
		}
		if w := cs.State.Waiting; w != nil && w.Reason == reasonCrashLoopBackOff {
			msg = "Restarting after failure"
		}
	}
	return msg
}
