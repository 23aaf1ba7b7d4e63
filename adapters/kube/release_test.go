package kube

import (
	"context"
	"fmt"
	"testing"
	"time"

	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/release"
	helmdriver "helm.sh/helm/v3/pkg/storage/driver"
	helmtime "helm.sh/helm/v3/pkg/time"
	"k8s.io/client-go/kubernetes/fake"
)

func storeRelease(t *testing.T, drv *helmdriver.Secrets, name string, version int, status release.Status, deployed time.Time) {
	t.Helper()
	rel := &release.Release{
		Name:      name,
		Namespace: "p1",
		Version:   version,
		Info: &release.Info{
			Status:       status,
			Description:  "Upgrade complete",
			LastDeployed: helmtime.Time{Time: deployed},
		},
		Chart: &chart.Chart{Metadata: &chart.Metadata{Name: "web-service", Version: "1.2.0"}},
	}
	key := fmt.Sprintf("sh.helm.release.v1.%s.v%d", name, version)
	if err := drv.Create(key, rel); err != nil {
		t.Fatalf("store release %s: %v", key, err)
	}
}

func TestReleaseRepositoryList(t *testing.T) {
	cs := fake.NewSimpleClientset()
	drv := helmdriver.NewSecrets(cs.CoreV1().Secrets("p1"))
	storeRelease(t, drv, "web-abcde", 1, release.StatusSuperseded, ts)
	storeRelease(t, drv, "web-abcde", 2, release.StatusDeployed, ts.Add(time.Hour))
	storeRelease(t, drv, "api-fghij", 1, release.StatusDeployed, ts)

	repo := NewReleaseRepository(NewClient(cs))
	got, err := repo.List(context.Background(), "p1", "web-abcde")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d releases, want 2", len(got))
	}
	if got[0].Revision != 2 || got[0].Status != "deployed" || got[0].ID != "web-abcde.v2" {
		t.Errorf("unexpected newest release %+v", got[0])
	}
	if got[1].Revision != 1 || got[1].Status != "superseded" || got[1].Chart != "web-service-1.2.0" {
		t.Errorf("unexpected oldest release %+v", got[1])
	}
	if !got[0].CreatedAt.Equal(ts.Add(time.Hour)) {
		t.Errorf("CreatedAt = %v", got[0].CreatedAt)
	}

	none, err := repo.List(context.Background(), "p1", "missing")
	if err != nil || len(none) != 0 {
		t.Fatalf("List(missing) = %v, %v", none, err)
	}
}
