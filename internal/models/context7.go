package models

// AddLibraryRequest is the payload for the Context7 add endpoint.
type AddLibraryRequest struct {
	DocsRepoURL string `json:"docsRepoUrl"`
}

// RefreshLibraryRequest is the payload for the Context7 refresh endpoint.
type RefreshLibraryRequest struct {
	RequestedLibrary string `json:"requestedLibrary"`
}

// APIResponse is the JSON body Context7 returns from both endpoints. Status
// is only populated by the refresh endpoint.
type APIResponse struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}
