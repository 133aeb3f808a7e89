package models

// Folder groups files one level deep. A nil ParentID means the folder sits
// in the root.
type Folder struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentId,omitempty"`
}

// DashboardSnapshot is the aggregate (user, files, folders) returned by one
// dashboard query. It is a point-in-time read, not a subscription: callers
// re-fetch it to observe the effect of their own mutations.
type DashboardSnapshot struct {
	User    *User    `json:"user"`
	Files   []File   `json:"files"`
	Folders []Folder `json:"folders"`
}
