// Package main provides the out-of-band admin provisioning utility.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"coachblog/internal/auth"
	"coachblog/internal/config"
	"coachblog/internal/database"
	"coachblog/internal/models"
	"coachblog/internal/repository"

	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin create [email] [password]  - Create an admin account")
		fmt.Println("  go run ./cmd/admin list                       - List admin accounts")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	admins := repository.NewAdminRepository(db)

	switch os.Args[1] {
	case "create":
		createAdmin(admins, os.Args[2:])
	case "list":
		listAdmins(admins)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

// createAdmin provisions a new account. Email and password come from the
// arguments when supplied, otherwise from interactive prompts (the password
// prompt does not echo).
func createAdmin(admins repository.AdminRepository, args []string) {
	ctx := context.Background()

	var email, password string
	if len(args) > 0 {
		email = args[0]
	} else {
		email = prompt("Admin email: ")
	}
	email = strings.ToLower(strings.TrimSpace(email))

	if len(args) > 1 {
		password = args[1]
	} else {
		password = promptPassword("Admin password: ")
	}

	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Email and password are required.")
		os.Exit(1)
	}

	existing, err := admins.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if existing != nil {
		fmt.Fprintln(os.Stderr, "Admin already exists with that email.")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &models.Admin{Email: email, PasswordHash: hash, Role: "editor"}
	if err := admins.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin created: %s\n", email)
}

func listAdmins(admins repository.AdminRepository) {
	accounts, err := admins.List(context.Background())
	if err != nil {
		log.Fatalf("Failed to fetch admins: %v", err)
	}

	if len(accounts) == 0 {
		fmt.Println("No admins found")
		return
	}

	for _, admin := range accounts {
		fmt.Printf("ID: %d | Email: %s | Role: %s\n", admin.ID, admin.Email, admin.Role)
	}
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(label string) string {
	fmt.Print(label)
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	return strings.TrimSpace(string(bytePassword))
}
