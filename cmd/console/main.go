package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/distrohub/distro-backend-go/internal/session"
	"github.com/joho/godotenv"
)

// A small operator console for the admin API: it hydrates a persisted
// session, optionally logs in or out, and shows the menu the current user
// would see.
func main() {
	_ = godotenv.Load()

	var (
		serverURL = flag.String("server", envOr("API_BASE_URL", "http://localhost:8080"), "admin API base URL")
		stateDir  = flag.String("state-dir", os.Getenv("SESSION_STATE_DIR"), "session state directory (default: user config dir)")
		email     = flag.String("email", "", "log in with this email before showing status")
		password  = flag.String("password", "", "password for -email")
		logout    = flag.Bool("logout", false, "log out and clear the stored session")
		watch     = flag.Bool("watch", false, "keep running and refresh the session in the background")
		interval  = flag.Duration("interval", 15*time.Minute, "background refresh interval with -watch")
	)
	flag.Parse()

	store, err := session.NewStore(*stateDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening session store:", err)
		os.Exit(1)
	}

	client := session.NewClient(*serverURL, store.DeviceID())
	manager := session.NewManager(store, client, session.WithRefreshInterval(*interval))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	manager.Hydrate()

	if *logout {
		manager.Logout(ctx)
		fmt.Println("Logged out.")
		return
	}

	if *email != "" {
		result := manager.Login(ctx, *email, *password)
		if !result.Success {
			fmt.Fprintln(os.Stderr, "Login failed:", result.Error)
			os.Exit(1)
		}
	} else {
		// Confirm the hydrated session against the server.
		manager.RefreshSession(ctx)
	}

	printStatus(manager)

	if *watch {
		fmt.Println("\nWatching session; press Ctrl-C to stop.")
		manager.Run(ctx)
	}
}

func printStatus(manager *session.Manager) {
	snap := manager.Snapshot()
	fmt.Println("Session state:", snap.State)
	if snap.Message != "" {
		fmt.Println(snap.Message)
	}
	if snap.State != session.StateAuthenticated {
		return
	}

	fmt.Printf("Signed in as %s <%s> (%s)\n", snap.Profile.Name, snap.Profile.Email, snap.Profile.Role)
	if !snap.Verified {
		fmt.Println("Profile is from the local cache and not yet confirmed by the server.")
	}

	authorized, restricted := session.Partition(snap.Profile)
	fmt.Println("\nMenu:")
	for _, entry := range authorized {
		fmt.Printf("  %-26s %s\n", entry.Title, entry.Path)
	}
	for _, entry := range restricted {
		fmt.Printf("  %-26s %s (restricted)\n", entry.Title, entry.Path)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
