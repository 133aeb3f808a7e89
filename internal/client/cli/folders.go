package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Mkdir prompts for a folder name and creates it in the root.
func (a *App) Mkdir(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter folder name", os.Stdout)
	if err != nil {
		return err
	}

	res := a.gateway.CreateFolder(ctx, name, nil)
	if !res.OK {
		log.Printf("Create folder unsuccessful: %s", res.Message)
		return nil
	}

	if res.Folder != nil {
		fmt.Printf("Created folder [%d] %s\n", res.Folder.ID, res.Folder.Name)
	}
	if err := a.refresh(ctx); err != nil {
		log.Printf("error: %v", err)
	}
	return nil
}

// Open lists the files belonging to one folder.
func (a *App) Open(ctx context.Context, args []string) error {
	id, ok := parseID(args, "open <folderId>")
	if !ok {
		return nil
	}

	res := a.gateway.FolderContents(ctx, id)
	if !res.OK {
		log.Printf("error: %s", res.Message)
		return nil
	}

	if len(res.Files) == 0 {
		fmt.Println("Folder is empty.")
		return nil
	}
	for _, file := range res.Files {
		fmt.Printf("[%d] %s (%d bytes, %s)\n", file.ID, file.Name(), file.Size, file.MimeType)
	}
	return nil
}

// RenameFolder prompts for the new name and refreshes the dashboard.
func (a *App) RenameFolder(ctx context.Context, args []string) error {
	id, ok := parseID(args, "mvdir <folderId>")
	if !ok {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter new folder name", os.Stdout)
	if err != nil {
		return err
	}

	res := a.gateway.RenameFolder(ctx, id, name)
	if !res.OK {
		log.Printf("Rename unsuccessful: %s", res.Message)
		return nil
	}

	if err := a.refresh(ctx); err != nil {
		log.Printf("error: %v", err)
	}
	return nil
}

// DeleteFolder removes a folder and refreshes the dashboard.
func (a *App) DeleteFolder(ctx context.Context, args []string) error {
	id, ok := parseID(args, "rmdir <folderId>")
	if !ok {
		return nil
	}

	res := a.gateway.DeleteFolder(ctx, id)
	if !res.OK {
		log.Printf("Delete unsuccessful: %s", res.Message)
		return nil
	}

	if err := a.refresh(ctx); err != nil {
		log.Printf("error: %v", err)
	}
	return nil
}
