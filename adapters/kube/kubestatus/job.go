package kubestatus

import (
	"fmt"
	"sort"
	"time"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/shipmight/shipmight/domain/model"
)

const (
	// LabelJobName is set on job pods by the job controller.
	LabelJobName = "batch.kubernetes.io/job-name"
	// LabelLegacyJobName is the pre-1.27 form of LabelJobName.
	LabelLegacyJobName = "job-name"

	reasonDeadlineExceeded = "DeadlineExceeded"
)

// JobStatus derives the run status of a job from its conditions and counters.
// pods may include pods of other jobs; only the job's own pods are consulted.
func JobStatus(job *batchv1.Job, pods []corev1.Pod) (model.RunState, string) {
	if c := jobCondition(job, batchv1.JobFailed); c != nil && c.Status == corev1.ConditionTrue {
		if c.Reason == reasonDeadlineExceeded && job.Spec.ActiveDeadlineSeconds != nil {
			d := time.Duration(*job.Spec.ActiveDeadlineSeconds) * time.Second
			return model.RunFailed, "Did not finish within " + FormatDuration(d)
		}
		return model.RunFailed, ""
	}

	if job.Status.Active > 0 {
		var wait string
		if p := activePod(job, pods); p != nil {
			wait = waitingMessage(p)
		}
		failed := job.Status.Failed
		switch {
		case wait != "" && failed > 0:
			return model.RunRunning, fmt.Sprintf("%s (failed %d times, retrying)", wait, failed)
		case failed > 0:
			return model.RunRunning, fmt.Sprintf("Failed %d times, retrying", failed)
		default:
			return model.RunRunning, wait
		}
	}

	if job.Status.Succeeded > 0 {
		start, done := job.Status.StartTime, job.Status.CompletionTime
		if start == nil || done == nil {
			return model.RunSucceeded, ""
		}
		return model.RunSucceeded, "Completed in " + FormatDuration(done.Sub(start.Time))
	}

	return model.RunUnknown, ""
}

// Runs derives a run per job, newest first.
func Runs(jobs []batchv1.Job, pods []corev1.Pod) []*model.Run {
	out := make([]*model.Run, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		status, msg := JobStatus(job, pods)
		out = append(out, &model.Run{
			ID:        job.Name,
			ProjectID: job.Namespace,
			Status:    status,
			Message:   msg,
			CreatedAt: job.CreationTimestamp.Time,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func jobCondition(job *batchv1.Job, t batchv1.JobConditionType) *batchv1.JobCondition {
	for i := range job.Status.Conditions {
		if job.Status.Conditions[i].Type == t {
			return &job.Status.Conditions[i]
		}
	}
	return nil
}

// JobPods returns the pods created for job.
func JobPods(job *batchv1.Job, pods []corev1.Pod) []*corev1.Pod {
	var out []*corev1.Pod
	for i := range pods {
		p := &pods[i]
		if p.Namespace != job.Namespace {
			continue
		}
		name, ok := p.Labels[LabelJobName]
		if !ok {
			name = p.Labels[LabelLegacyJobName]
		}
		if name == job.Name {
			out = append(out, p)
		}
	}
	return out
}

// activePod picks the newest unfinished pod of the job.
func activePod(job *batchv1.Job, pods []corev1.Pod) *corev1.Pod {
	var best *corev1.Pod
	for _, p := range JobPods(job, pods) {
		if p.Status.Phase != corev1.PodPending && p.Status.Phase != corev1.PodRunning {
			continue
		}
		if best == nil || p.CreationTimestamp.After(best.CreationTimestamp.Time) ||
			p.CreationTimestamp.Equal(&best.CreationTimestamp) && p.Name > best.Name {
			best = p
		}
	}
	return best
}
