package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFile_MultipartFieldsAndCredential(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/files/upload", r.URL.Path)
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "My notes", r.FormValue("displayName"))
		assert.Equal(t, "5", r.FormValue("folderId"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "notes.txt", hdr.Filename)
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))

		jsonResponse(t, w, http.StatusOK, map[string]any{
			"success": true,
			"file": map[string]any{
				"id":           7,
				"originalName": "notes.txt",
				"displayName":  "My notes",
				"size":         5,
				"mimetype":     "text/plain",
				"storageUrl":   "/uploads/notes.txt",
				"folderId":     5,
				"createdAt":    "2025-06-01T12:00:00Z",
			},
		})
	}), TransportBearer)

	require.NoError(t, store.Set("T"))

	folderID := int64(5)
	res := c.UploadFile(context.Background(), strings.NewReader("hello"), "notes.txt", "My notes", &folderID)

	require.True(t, res.OK)
	require.NotNil(t, res.File)
	assert.Equal(t, int64(7), res.File.ID)
	assert.Equal(t, "My notes", res.File.Name())
}

func TestUploadFile_RootOmitsFolderID(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, hasFolder := r.MultipartForm.Value["folderId"]
		assert.False(t, hasFolder)
		jsonResponse(t, w, http.StatusOK, map[string]any{"success": true})
	}), TransportBearer)

	res := c.UploadFile(context.Background(), strings.NewReader("x"), "a.txt", "a", nil)
	require.True(t, res.OK)
}

func TestUploadFile_EmptyDisplayNameRejectedLocally(t *testing.T) {
	requests := 0
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}), TransportBearer)

	res := c.UploadFile(context.Background(), strings.NewReader("x"), "a.txt", "   ", nil)

	require.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, 0, requests)
}

func TestRenameFile_PayloadAndPath(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/files/rename", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(7), body["fileId"])
		assert.Equal(t, "new", body["displayName"])

		jsonResponse(t, w, http.StatusOK, map[string]any{"success": true})
	}), TransportBearer)

	res := c.RenameFile(context.Background(), 7, "new")
	require.True(t, res.OK)
}

func TestRenameFile_EmptyNameRejectedLocally(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}), TransportBearer)

	res := c.RenameFile(context.Background(), 7, "")
	require.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
}

func TestDeleteFile_UsesDeleteMethod(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/files/7", r.URL.Path)
		jsonResponse(t, w, http.StatusOK, map[string]any{"success": true})
	}), TransportBearer)

	res := c.DeleteFile(context.Background(), 7)
	require.True(t, res.OK)
}

func TestDownloadFile_StreamsBody(t *testing.T) {
	payload := bytes.Repeat([]byte("data"), 1024)

	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/files/9/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	}), TransportBearer)

	var buf bytes.Buffer
	res := c.DownloadFile(context.Background(), 9, &buf)

	require.True(t, res.OK)
	assert.Equal(t, int64(len(payload)), res.BytesWritten)
	assert.Equal(t, payload, buf.Bytes())
}

func TestDownloadFile_UnauthorizedClearsStoreAndWritesNothing(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusUnauthorized, map[string]any{
			"success":  false,
			"message":  "token expired",
			"redirect": "/login",
		})
	}), TransportBearer)

	require.NoError(t, store.Set("stale"))

	var buf bytes.Buffer
	res := c.DownloadFile(context.Background(), 9, &buf)

	require.False(t, res.OK)
	assert.Equal(t, "token expired", res.Message)
	assert.Zero(t, buf.Len())
	assert.False(t, store.IsAuthenticated())
}

func TestDownloadFile_NotFound(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "not found",
		})
	}), TransportBearer)

	var buf bytes.Buffer
	res := c.DownloadFile(context.Background(), 404, &buf)

	require.False(t, res.OK)
	assert.Equal(t, "not found", res.Message)
	assert.Zero(t, buf.Len())
}

func TestDashboard_ParsesSnapshot(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/dashboard", r.URL.Path)
		jsonResponse(t, w, http.StatusOK, map[string]any{
			"success": true,
			"user":    map[string]any{"id": 1, "name": "A", "email": "a@b.com"},
			"files": []map[string]any{
				{"id": 7, "originalName": "a.txt", "size": 1, "mimetype": "text/plain"},
			},
			"folders": []map[string]any{
				{"id": 3, "name": "docs"},
			},
		})
	}), TransportBearer)

	res := c.Dashboard(context.Background())

	require.True(t, res.OK)
	require.NotNil(t, res.User)
	require.Len(t, res.Files, 1)
	require.Len(t, res.Folders, 1)
	assert.Equal(t, int64(7), res.Files[0].ID)
	assert.Equal(t, "docs", res.Folders[0].Name)

	snap := res.Snapshot()
	assert.Equal(t, res.User, snap.User)
	assert.Len(t, snap.Files, 1)
}

func TestCreateFolder_PayloadIncludesNullParent(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/folders/create", r.URL.Path)

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, `"photos"`, string(body["name"]))
		assert.Equal(t, `null`, string(body["parentId"]))

		jsonResponse(t, w, http.StatusOK, map[string]any{
			"success": true,
			"folder":  map[string]any{"id": 4, "name": "photos"},
		})
	}), TransportBearer)

	res := c.CreateFolder(context.Background(), "photos", nil)

	require.True(t, res.OK)
	require.NotNil(t, res.Folder)
	assert.Equal(t, int64(4), res.Folder.ID)
}

func TestCreateFolder_EmptyNameRejectedLocally(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}), TransportBearer)

	res := c.CreateFolder(context.Background(), "  ", nil)
	require.False(t, res.OK)
}

func TestRenameFolder_Payload(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/folders/rename", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(3), body["folderId"])
		assert.Equal(t, "archive", body["name"])

		jsonResponse(t, w, http.StatusOK, map[string]any{"success": true})
	}), TransportBearer)

	res := c.RenameFolder(context.Background(), 3, "archive")
	require.True(t, res.OK)
}

func TestFolderContents_ListsFiles(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/folders/3", r.URL.Path)
		jsonResponse(t, w, http.StatusOK, map[string]any{
			"success": true,
			"files": []map[string]any{
				{"id": 7, "originalName": "a.txt", "displayName": "new", "folderId": 3},
			},
		})
	}), TransportBearer)

	res := c.FolderContents(context.Background(), 3)

	require.True(t, res.OK)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "new", res.Files[0].Name())
}

func TestRenameThenListRoundTrip(t *testing.T) {
	displayName := ""
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/files/rename":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			displayName = body["displayName"].(string)
			jsonResponse(t, w, http.StatusOK, map[string]any{"success": true})
		case r.URL.Path == "/folders/3":
			jsonResponse(t, w, http.StatusOK, map[string]any{
				"success": true,
				"files": []map[string]any{
					{"id": 7, "originalName": "a.txt", "displayName": displayName, "folderId": 3},
				},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}), TransportBearer)

	ctx := context.Background()
	require.True(t, c.RenameFile(ctx, 7, "new").OK)

	res := c.FolderContents(ctx, 3)
	require.True(t, res.OK)
	require.Len(t, res.Files, 1)
	assert.Equal(t, int64(7), res.Files[0].ID)
	assert.Equal(t, "new", res.Files[0].DisplayName)
}

func TestRegister_PayloadAndValidationErrors(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "A", body["name"])
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "p1", body["password"])
		assert.Equal(t, "p2", body["password2"])

		jsonResponse(t, w, http.StatusOK, map[string]any{
			"success": false,
			"message": "validation failed",
			"errors":  []string{"passwords do not match"},
		})
	}), TransportBearer)

	res := c.Register(context.Background(), "A", "a@b.com", "p1", "p2")

	require.False(t, res.OK)
	assert.Equal(t, "validation failed", res.Message)
	require.Len(t, res.Errors, 1)
	assert.False(t, store.IsAuthenticated())
}

func TestRegister_SuccessStoresToken(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, map[string]any{
			"success": true,
			"user":    map[string]any{"id": 2, "name": "B"},
			"token":   "REG",
		})
	}), TransportBearer)

	res := c.Register(context.Background(), "B", "b@b.com", "p", "p")

	require.True(t, res.OK)
	token, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "REG", token)
}

func TestGatewayPaths_DoNotDependOnTrailingSlash(t *testing.T) {
	var path string
	srv := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		jsonResponse(t, w, http.StatusOK, map[string]any{"success": true})
	})

	c, _, _ := newTestClient(t, srv, TransportBearer)

	for id := int64(1); id <= 2; id++ {
		c.DeleteFile(context.Background(), id)
		assert.Equal(t, fmt.Sprintf("/files/%d", id), path)
	}
}
