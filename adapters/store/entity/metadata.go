package entity

// Label and annotation keys written on stored objects. Keep these stable; they
// are the query surface of every entity kind.
const (
	// LabelDomain namespaces every shipmight label and annotation.
	LabelDomain = "shipmight.com"

	LabelManagedBy = "app.kubernetes.io/managed-by"
	ManagedBy      = "shipmight"

	LabelProjectID      = LabelDomain + "/project-id"
	LabelAppID          = LabelDomain + "/app-id"
	LabelAppChartID     = LabelDomain + "/app-chart-id"
	LabelDomainID       = LabelDomain + "/domain-id"
	LabelMasterDomainID = LabelDomain + "/master-domain-id"
	LabelFileID         = LabelDomain + "/file-id"
	LabelRegistryID     = LabelDomain + "/registry-id"
	LabelDeployHookID   = LabelDomain + "/deploy-hook-id"
	LabelUserID         = LabelDomain + "/user-id"
	LabelUsername       = LabelDomain + "/username"

	AnnotationProjectName        = LabelDomain + "/project-name"
	AnnotationAppName            = LabelDomain + "/app-name"
	AnnotationAppChartName       = LabelDomain + "/app-chart-name"
	AnnotationDomainHostname     = LabelDomain + "/domain-hostname"
	AnnotationDomainPath         = LabelDomain + "/domain-path"
	AnnotationDomainAppPort      = LabelDomain + "/domain-app-port"
	AnnotationDomainTLSSecret    = LabelDomain + "/domain-tls-secret"
	AnnotationMasterDomainHost   = LabelDomain + "/master-domain-hostname"
	AnnotationFileName           = LabelDomain + "/file-name"
	AnnotationRegistryName       = LabelDomain + "/registry-name"
	AnnotationRegistryURL        = LabelDomain + "/registry-url"
	AnnotationRegistryAuthMethod = LabelDomain + "/registry-auth-method"
	AnnotationDeployHookName     = LabelDomain + "/deploy-hook-name"
)

// Payload keys.
const (
	dataValues       = "values"
	dataContent      = "content"
	dataAuthToken    = "authToken"
	dataToken        = "token"
	dataPasswordHash = "passwordHash"
	dataTLSCert      = "tlsCert"
	dataTLSKey       = "tlsKey"
	dataFields       = "fields"
)
