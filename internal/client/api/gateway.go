package api

import (
	"context"
	"io"
)

// Gateway is the typed surface the UI layer programs against. Each method
// maps one user intent to exactly one HTTP request and one normalized
// result; implementations perform no retries and no backoff.
type Gateway interface {
	Login(ctx context.Context, email, password string) *LoginResult
	Register(ctx context.Context, name, email, password, password2 string) *RegisterResult
	Logout(ctx context.Context) *Result
	Me(ctx context.Context) *MeResult
	Ping(ctx context.Context) error

	Dashboard(ctx context.Context) *DashboardResult

	UploadFile(ctx context.Context, r io.Reader, fileName, displayName string, folderID *int64) *UploadResult
	RenameFile(ctx context.Context, fileID int64, displayName string) *Result
	DeleteFile(ctx context.Context, fileID int64) *Result
	DownloadFile(ctx context.Context, fileID int64, w io.Writer) *DownloadResult

	CreateFolder(ctx context.Context, name string, parentID *int64) *FolderResult
	RenameFolder(ctx context.Context, folderID int64, name string) *Result
	DeleteFolder(ctx context.Context, folderID int64) *Result
	FolderContents(ctx context.Context, folderID int64) *FolderContentsResult
}
