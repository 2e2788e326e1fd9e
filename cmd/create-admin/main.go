// Command create-admin bootstraps the first admin panel account.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/campusmind/campusmind-api/internal/config"
	"github.com/campusmind/campusmind-api/internal/domain/admin"
	"github.com/campusmind/campusmind-api/internal/domain/user"
	"github.com/campusmind/campusmind-api/internal/pkg/database"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required, min 8 chars)")
	name := flag.String("name", "Administrator", "admin display name")
	role := flag.String("role", string(admin.RoleAdmin), "admin role (admin or moderator)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "password must be at least 8 characters")
		os.Exit(2)
	}
	if *role != string(admin.RoleAdmin) && *role != string(admin.RoleModerator) {
		fmt.Fprintln(os.Stderr, "role must be admin or moderator")
		os.Exit(2)
	}

	cfg := config.Load()

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.ClosePostgres(db)

	svc := admin.NewService(
		admin.NewRepository(db),
		user.NewRepository(db),
		cfg.AdminMaxLoginAttempts,
		cfg.AdminLockoutDuration,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := svc.CreateAdmin(ctx, &admin.CreateAdminRequest{
		Email:    *email,
		Password: *password,
		Role:     *role,
		Name:     *name,
	})
	if err != nil {
		if err == admin.ErrEmailTaken {
			fmt.Fprintf(os.Stderr, "admin with email %s already exists\n", *email)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "failed to create admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("admin created: id=%s email=%s role=%s\n", created.ID, created.Email, created.Role)
}
