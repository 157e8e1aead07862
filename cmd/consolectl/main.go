package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/lernia/console-backend/internal/config"
	"github.com/lernia/console-backend/internal/logger"
	"github.com/lernia/console-backend/internal/upstream"
)

// consolectl logs into the platform with admin credentials and runs a few
// read-only calls. Useful for checking connectivity and credentials before
// pointing the gateway at a platform environment.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	client := upstream.New(cfg, log)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Console Gateway Smoke Check ===")

	fmt.Print("Admin Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	fmt.Print("Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println()
	if password == "" {
		fmt.Println("Error: Password is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ─── Login ─────────────────────────────────────────────────────────
	token, profile, err := client.Login(ctx, email, password)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Logged in as %s <%s>\n", profile.Name, profile.Email)

	ctx = upstream.WithToken(ctx, token)

	// ─── Read-only Probes ──────────────────────────────────────────────
	stats, err := client.DashboardStats(ctx)
	if err != nil {
		fmt.Printf("Dashboard stats failed: %v\n", err)
	} else {
		fmt.Printf("Dashboard: %d teachers, %d students, %d courses\n",
			stats.TotalTeachers, stats.TotalStudents, stats.TotalCourses)
	}

	teachers, _, err := client.ListTeachers(ctx, 1, 5, "")
	if err != nil {
		fmt.Printf("Teacher list failed: %v\n", err)
	} else {
		fmt.Printf("Teacher list: %d row(s) on page 1\n", len(teachers))
	}

	withdrawals, _, err := client.ListWithdrawals(ctx, 1, 5, "pending")
	if err != nil {
		fmt.Printf("Withdrawal list failed: %v\n", err)
	} else {
		fmt.Printf("Pending withdrawals: %d row(s) on page 1\n", len(withdrawals))
	}

	fmt.Println("Smoke check complete")
}
