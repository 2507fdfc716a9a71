package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	pg "openadopt/internal/adapters/storage/postgres"
	"openadopt/internal/config"
	"openadopt/internal/domain/users"
)

// createadmin da de alta la primera cuenta super_admin directamente en la
// base. No pasa por el API: el login es la única puerta HTTP y necesita
// una cuenta que exista.
func main() {
	var (
		email     = flag.String("email", "", "email de la cuenta (requerido)")
		password  = flag.String("password", "", "password en claro (requerido)")
		firstName = flag.String("first-name", "", "nombre")
		lastName  = flag.String("last-name", "", "apellido")
		role      = flag.String("role", string(users.RoleSuperAdmin), "rol: super_admin | admin | viewer")
	)
	flag.Parse()

	if strings.TrimSpace(*email) == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: createadmin -email <email> -password <password> [-first-name ...] [-last-name ...] [-role ...]")
		os.Exit(2)
	}
	if !users.ValidRole(users.Role(*role)) {
		fmt.Fprintf(os.Stderr, "invalid role %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Read()
	if err != nil {
		fatal("config: %v", err)
	}
	if cfg.DB.DSN == "" {
		fatal("DB_DSN must be set: the in-memory store does not outlive the process")
	}

	db, err := pg.Open(cfg.DB.DSN)
	if err != nil {
		fatal("connect to postgres: %v", err)
	}
	defer db.Close()

	repo := pg.NewUsersRepo(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	normalized := users.NormalizeEmail(*email)
	if _, err := repo.GetByEmail(ctx, normalized); err == nil {
		fatal("account %s already exists", normalized)
	}

	hash, err := users.HashPassword(*password)
	if err != nil {
		fatal("hash password: %v", err)
	}

	now := time.Now().UTC()
	u := users.User{
		ID:             uuid.NewString(),
		Email:          normalized,
		HashedPassword: hash,
		FirstName:      strings.TrimSpace(*firstName),
		LastName:       strings.TrimSpace(*lastName),
		Role:           users.Role(*role),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := repo.Create(ctx, u); err != nil {
		fatal("create account: %v", err)
	}

	fmt.Printf("created %s account %s (%s)\n", u.Role, u.Email, u.ID)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
