package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/gophdrive/internal/filex"
)

func parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Println("Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Not a valid id: %s\n", args[0])
		return 0, false
	}
	return id, true
}

// List re-fetches and prints the dashboard snapshot: folders first, then
// files in the root.
func (a *App) List(ctx context.Context) error {
	if err := a.refresh(ctx); err != nil {
		log.Printf("error: %v", err)
		return nil
	}

	for _, folder := range a.folders {
		fmt.Printf("[%d] %s/\n", folder.ID, folder.Name)
	}
	for _, file := range a.files {
		fmt.Printf("[%d] %s (%d bytes, %s)\n", file.ID, file.Name(), file.Size, file.MimeType)
	}
	if len(a.folders) == 0 && len(a.files) == 0 {
		fmt.Println("Nothing here yet. Try 'upload' or 'mkdir'.")
	}
	return nil
}

// Upload prompts for a local path, a display name and an optional folder
// id, sends the file and refreshes the dashboard.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter local file path", os.Stdout)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	folderStr, err := getSimpleText(a.reader, "Enter folder id (empty for root)", os.Stdout)
	if err != nil {
		return err
	}
	var folderID *int64
	if folderStr != "" {
		id, err := strconv.ParseInt(folderStr, 10, 64)
		if err != nil {
			fmt.Printf("Not a valid folder id: %s\n", folderStr)
			return nil
		}
		folderID = &id
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("error: %v", err)
		return nil
	}
	defer f.Close()

	res := a.gateway.UploadFile(ctx, f, filepath.Base(path), displayName, folderID)
	if !res.OK {
		log.Printf("Upload unsuccessful: %s", res.Message)
		return nil
	}

	if res.File != nil {
		fmt.Printf("Uploaded as [%d] %s\n", res.File.ID, res.File.Name())
	}
	if err := a.refresh(ctx); err != nil {
		log.Printf("error: %v", err)
	}
	return nil
}

// RenameFile prompts for the new display name and refreshes the dashboard.
func (a *App) RenameFile(ctx context.Context, args []string) error {
	id, ok := parseID(args, "mv <fileId>")
	if !ok {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter new display name", os.Stdout)
	if err != nil {
		return err
	}

	res := a.gateway.RenameFile(ctx, id, name)
	if !res.OK {
		log.Printf("Rename unsuccessful: %s", res.Message)
		return nil
	}

	if err := a.refresh(ctx); err != nil {
		log.Printf("error: %v", err)
	}
	return nil
}

// DeleteFile removes a file and refreshes the dashboard.
func (a *App) DeleteFile(ctx context.Context, args []string) error {
	id, ok := parseID(args, "rm <fileId>")
	if !ok {
		return nil
	}

	res := a.gateway.DeleteFile(ctx, id)
	if !res.OK {
		log.Printf("Delete unsuccessful: %s", res.Message)
		return nil
	}

	if err := a.refresh(ctx); err != nil {
		log.Printf("error: %v", err)
	}
	return nil
}

// Download streams a file into the configured download directory, naming
// it after the file's display name when the snapshot knows it.
func (a *App) Download(ctx context.Context, args []string) error {
	id, ok := parseID(args, "download <fileId>")
	if !ok {
		return nil
	}

	dir, err := filex.EnsureSubDir(a.config.DownloadDir)
	if err != nil {
		log.Printf("error: %v", err)
		return nil
	}

	fallback := fmt.Sprintf("file-%d", id)
	name := fallback
	for _, f := range a.files {
		if f.ID == id {
			name = filex.SafeFileName(f.Name(), fallback)
			break
		}
	}

	target := filepath.Join(dir, name)
	out, err := os.Create(target)
	if err != nil {
		log.Printf("error: %v", err)
		return nil
	}
	defer out.Close()

	res := a.gateway.DownloadFile(ctx, id, out)
	if !res.OK {
		log.Printf("Download unsuccessful: %s", res.Message)
		_ = os.Remove(target)
		return nil
	}

	fmt.Printf("Saved %s (%d bytes)\n", target, res.BytesWritten)
	return nil
}
