// Where: internal/argocd/types.go
// What: JSON payload shapes consumed from argocd list output.
// Why: Only the projected fields are declared; everything else is ignored.
package argocd

// Repository is one element of `argocd repo list -o json`.
type Repository struct {
	Repo            string          `json:"repo"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	Project         string          `json:"project"`
	ConnectionState ConnectionState `json:"connectionState"`
}

// ConnectionState is the nested connection status of a repository.
type ConnectionState struct {
	Status string `json:"status"`
}

// Application is one element of `argocd app list -o json`.
type Application struct {
	Metadata AppMetadata `json:"metadata"`
	Spec     AppSpecInfo `json:"spec"`
	Status   AppStatus   `json:"status"`
}

// AppMetadata carries the application name.
type AppMetadata struct {
	Name string `json:"name"`
}

// AppSpecInfo carries the project and destination of an application.
type AppSpecInfo struct {
	Project     string         `json:"project"`
	Destination AppDestination `json:"destination"`
}

// AppDestination is the target cluster and namespace.
type AppDestination struct {
	Server    string `json:"server"`
	Namespace string `json:"namespace"`
}

// AppStatus carries the two independent state fields the control plane
// reports per application.
type AppStatus struct {
	Sync   StatusField `json:"sync"`
	Health StatusField `json:"health"`
}

// StatusField is a nested single-status object.
type StatusField struct {
	Status string `json:"status"`
}
