package kube

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/shipmight/shipmight/adapters/kube/kubestatus"
	"github.com/shipmight/shipmight/adapters/store/entity"
	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
)

func appSelector(appID string) metav1.ListOptions {
	return metav1.ListOptions{LabelSelector: objstore.Selector{objstore.Eq(entity.LabelAppID, appID)}.String()}
}

// DeploymentRepository reads app revisions from replica sets and their pods.
type DeploymentRepository struct {
	Client *Client
}

var _ domain.DeploymentRepository = (*DeploymentRepository)(nil)

func NewDeploymentRepository(c *Client) *DeploymentRepository {
	return &DeploymentRepository{Client: c}
}

// List returns the revisions of appID in project projectID, newest first.
func (r *DeploymentRepository) List(ctx context.Context, projectID, appID string) ([]*model.Deployment, error) {
	cs, err := r.Client.clientset()
	if err != nil {
		return nil, err
	}
	opts := appSelector(appID)
	rsList, err := cs.AppsV1().ReplicaSets(projectID).List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list replicasets: %w", err)
	}
	podList, err := cs.CoreV1().Pods(projectID).List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}
	out := kubestatus.Revisions(rsList.Items, podList.Items)
	for _, d := range out {
		d.AppID = appID
	}
	return out, nil
}

// RunRepository reads app runs from jobs and their pods.
type RunRepository struct {
	Client *Client
}

var _ domain.RunRepository = (*RunRepository)(nil)

func NewRunRepository(c *Client) *RunRepository {
	return &RunRepository{Client: c}
}

// List returns the runs of appID in project projectID, newest first.
func (r *RunRepository) List(ctx context.Context, projectID, appID string) ([]*model.Run, error) {
	cs, err := r.Client.clientset()
	if err != nil {
		return nil, err
	}
	opts := appSelector(appID)
	jobList, err := cs.BatchV1().Jobs(projectID).List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	podList, err := cs.CoreV1().Pods(projectID).List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}
	out := kubestatus.Runs(jobList.Items, podList.Items)
	for _, run := range out {
		run.AppID = appID
	}
	return out, nil
}

// Find returns the run backed by job id in project projectID.
func (r *RunRepository) Find(ctx context.Context, projectID, id string) (*model.Run, error) {
	cs, err := r.Client.clientset()
	if err != nil {
		return nil, err
	}
	job, err := cs.BatchV1().Jobs(projectID).Get(ctx, id, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, model.NotFound("run", id)
		}
		return nil, fmt.Errorf("get job %s/%s: %w", projectID, id, err)
	}
	pods, err := jobPods(ctx, cs.CoreV1().Pods(projectID), id)
	if err != nil {
		return nil, err
	}
	status, msg := kubestatus.JobStatus(job, pods)
	return &model.Run{
		ID:        job.Name,
		ProjectID: job.Namespace,
		AppID:     job.Labels[entity.LabelAppID],
		Status:    status,
		Message:   msg,
		CreatedAt: job.CreationTimestamp.Time,
	}, nil
}

type podLister interface {
	List(ctx context.Context, opts metav1.ListOptions) (*corev1.PodList, error)
}

// jobPods lists pods by the current job-name label, then by the legacy one.
func jobPods(ctx context.Context, pods podLister, jobName string) ([]corev1.Pod, error) {
	for _, key := range []string{kubestatus.LabelJobName, kubestatus.LabelLegacyJobName} {
		sel := objstore.Selector{objstore.Eq(key, jobName)}.String()
		list, err := pods.List(ctx, metav1.ListOptions{LabelSelector: sel})
		if err != nil {
			return nil, fmt.Errorf("list pods of job %s: %w", jobName, err)
		}
		if len(list.Items) > 0 {
			return list.Items, nil
		}
	}
	return nil, nil
}
