package models

import "time"

// File is a stored file record. DisplayName, when set, overrides
// OriginalName everywhere a name is shown. A nil FolderID means the file
// lives in the root.
type File struct {
	ID           int64     `json:"id"`
	OriginalName string    `json:"originalName"`
	DisplayName  string    `json:"displayName,omitempty"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimetype"`
	StorageURL   string    `json:"storageUrl"`
	FolderID     *int64    `json:"folderId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Name returns the name to show for the file: the display name when
// present, the original upload name otherwise.
func (f *File) Name() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	return f.OriginalName
}
