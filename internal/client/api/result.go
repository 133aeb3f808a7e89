package api

import "github.com/dmitrijs2005/gophdrive/internal/client/models"

// Result is the normalized shape every gateway call resolves to, regardless
// of the underlying transport outcome. OK mirrors the server's success flag
// (or is inferred from the HTTP status when the server omits it); Message
// is non-empty whenever OK is false.
type Result struct {
	OK       bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func (r *Result) base() *Result { return r }

// fail marks the result as a failure with a guaranteed non-empty message.
func (r *Result) fail(msg string) {
	r.OK = false
	if msg == "" {
		msg = "request failed"
	}
	r.Message = msg
}

// resulter lets the transport layer populate any per-endpoint result
// through its embedded Result.
type resulter interface {
	base() *Result
}

// LoginResult carries the authenticated user and, in bearer deployments,
// the issued token. Cookie deployments never set Token.
type LoginResult struct {
	Result
	User  *models.User `json:"user,omitempty"`
	Token string       `json:"token,omitempty"`
}

// RegisterResult is the login shape plus the per-field validation errors
// some servers return as a list instead of a single message.
type RegisterResult struct {
	Result
	User   *models.User `json:"user,omitempty"`
	Token  string       `json:"token,omitempty"`
	Errors []string     `json:"errors,omitempty"`
}

// MeResult carries the current user for credential revalidation.
type MeResult struct {
	Result
	User *models.User `json:"user,omitempty"`
}

// DashboardResult is the aggregate point-in-time read used to refresh all
// views after a mutation.
type DashboardResult struct {
	Result
	User    *models.User    `json:"user,omitempty"`
	Files   []models.File   `json:"files"`
	Folders []models.Folder `json:"folders"`
}

// UploadResult carries the created file record.
type UploadResult struct {
	Result
	File *models.File `json:"file,omitempty"`
}

// FolderResult carries the created folder record.
type FolderResult struct {
	Result
	Folder *models.Folder `json:"folder,omitempty"`
}

// FolderContentsResult lists the files belonging to one folder.
type FolderContentsResult struct {
	Result
	Files []models.File `json:"files"`
}

// DownloadResult reports the outcome of streaming a file to a local writer.
// BytesWritten is only meaningful when OK is true.
type DownloadResult struct {
	Result
	BytesWritten int64 `json:"-"`
}

// Snapshot converts a successful dashboard result into a models snapshot.
func (r *DashboardResult) Snapshot() *models.DashboardSnapshot {
	return &models.DashboardSnapshot{User: r.User, Files: r.Files, Folders: r.Folders}
}
