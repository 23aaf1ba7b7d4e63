package kube

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"helm.sh/helm/v3/pkg/release"
	helmdriver "helm.sh/helm/v3/pkg/storage/driver"

	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/logging"
)

// ReleaseRepository reads helm release history from the secrets helm stores
// in each project namespace. An app is installed as the release named by its id.
type ReleaseRepository struct {
	Client *Client
}

var _ domain.ReleaseRepository = (*ReleaseRepository)(nil)

func NewReleaseRepository(c *Client) *ReleaseRepository {
	return &ReleaseRepository{Client: c}
}

// List returns every stored revision of the app's release, newest first.
func (r *ReleaseRepository) List(ctx context.Context, projectID, appID string) ([]*model.Release, error) {
	cs, err := r.Client.clientset()
	if err != nil {
		return nil, err
	}
	drv := helmdriver.NewSecrets(cs.CoreV1().Secrets(projectID))
	drv.Log = func(format string, v ...any) {
		logging.FromContext(ctx).Debugf(ctx, "HelmDriver: "+format, v...)
	}
	rels, err := drv.Query(map[string]string{LabelHelmName: appID, LabelHelmOwner: "helm"})
	if err != nil {
		if errors.Is(err, helmdriver.ErrReleaseNotFound) {
			return []*model.Release{}, nil
		}
		return nil, fmt.Errorf("query helm releases of %s/%s: %w", projectID, appID, err)
	}
	out := make([]*model.Release, 0, len(rels))
	for _, rel := range rels {
		out = append(out, fromHelmRelease(projectID, appID, rel))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revision > out[j].Revision })
	return out, nil
}

func fromHelmRelease(projectID, appID string, rel *release.Release) *model.Release {
	out := &model.Release{
		ID:        fmt.Sprintf("%s.v%d", rel.Name, rel.Version),
		ProjectID: projectID,
		AppID:     appID,
		Revision:  rel.Version,
	}
	if rel.Info != nil {
		out.Status = rel.Info.Status.String()
		out.Description = rel.Info.Description
		out.CreatedAt = rel.Info.LastDeployed.Time
		if out.CreatedAt.IsZero() {
			out.CreatedAt = rel.Info.FirstDeployed.Time
		}
	}
	if rel.Chart != nil && rel.Chart.Metadata != nil {
		out.Chart = rel.Chart.Metadata.Name + "-" + rel.Chart.Metadata.Version
	}
	return out
}
