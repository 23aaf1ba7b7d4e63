package kube

// Label keys the kube adapter reads on its own behalf. Entity labels live in
// adapters/store/entity.
const (
	LabelAppK8sManagedBy = "app.kubernetes.io/managed-by"

	// LabelHelmOwner and LabelHelmName are set by helm on release storage secrets.
	LabelHelmOwner = "owner"
	LabelHelmName  = "name"
)
