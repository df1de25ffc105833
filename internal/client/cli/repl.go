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
	isAdmin() bool
	Register(ctx context.Context) error
	Request(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Donors(ctx context.Context) error
	Requests(ctx context.Context) error
	Stats(ctx context.Context) error
	Refresh(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a. It reads
// from the same reader the command forms prompt on, so answers that follow a
// command stay buffered for that command. The loop exits on EOF or when the
// user types "exit" or "quit".
//
//	Everyone:
//	  - help            show available commands
//	  - register        register as a blood donor
//	  - request         file a blood request
//	  - status          probe the API and show online/offline
//	  - login           admin login
//	  - exit | quit     leave the program
//
//	Admin:
//	  - donors          list donors
//	  - requests        list blood requests
//	  - stats           dashboard overview
//	  - refresh         probe, then reload lists and overview
//	  - reset           clear locally stored records
//	  - logout          leave admin mode
//
// Handlers report their own errors; the loop keeps running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bb> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			if a.isAdmin() {
				printlnFn("Available commands: register, request, status, donors, requests, stats, refresh, reset, logout, exit")
			} else {
				printlnFn("Available commands: register, request, status, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "request":
			_ = a.Request(ctx)

		case "status":
			_ = a.Status(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "donors", "requests", "stats", "refresh", "reset":
			if !a.isAdmin() {
				printlnFn("Admin login required")
				continue
			}
			switch cmd {
			case "donors":
				_ = a.Donors(ctx)
			case "requests":
				_ = a.Requests(ctx)
			case "stats":
				_ = a.Stats(ctx)
			case "refresh":
				_ = a.Refresh(ctx)
			case "reset":
				_ = a.Reset(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
