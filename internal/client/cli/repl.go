package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Upload(ctx context.Context) error
	Download(ctx context.Context, args []string) error
	RenameFile(ctx context.Context, args []string) error
	DeleteFile(ctx context.Context, args []string) error
	Mkdir(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	RenameFolder(ctx context.Context, args []string) error
	DeleteFolder(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the GophDrive CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help               — show available commands
//	  - register           — create an account
//	  - login              — authenticate
//	  - exit | quit        — leave the program
//
//	Logged in:
//	  - help               — show available commands
//	  - l | list           — list root folders and files
//	  - open <folderId>    — list a folder's files
//	  - upload             — upload a file (interactive prompts)
//	  - download <fileId>  — save a file to the download dir
//	  - mv <fileId>        — rename a file (interactive prompt)
//	  - rm <fileId>        — delete a file
//	  - mkdir              — create a folder (interactive prompt)
//	  - mvdir <folderId>   — rename a folder (interactive prompt)
//	  - rmdir <folderId>   — delete a folder
//	  - whoami             — show the current account
//	  - logout             — log out
//	  - exit | quit        — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gd> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, open, upload, download, mv, rm, mkdir, mvdir, rmdir, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "open":
			_ = a.Open(ctx, args)

		case "upload":
			_ = a.Upload(ctx)

		case "download":
			_ = a.Download(ctx, args)

		case "mv":
			_ = a.RenameFile(ctx, args)

		case "rm":
			_ = a.DeleteFile(ctx, args)

		case "mkdir":
			_ = a.Mkdir(ctx)

		case "mvdir":
			_ = a.RenameFolder(ctx, args)

		case "rmdir":
			_ = a.DeleteFolder(ctx, args)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
