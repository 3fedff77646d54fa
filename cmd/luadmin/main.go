// Command luadmin seeds an administrator account directly in the database.
// Admin accounts cannot be created through the public API, so this tool is
// the only way to mint one.
package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/auth"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/users"
)

const minPasswordLength = 6

func promptPassword(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, err
	}
	return pw, nil
}

func readPasswordWithConfirm() ([]byte, error) {
	pw, err := promptPassword("Enter password: ")
	if err != nil {
		return nil, err
	}
	if len(pw) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(pw, confirm) {
		return nil, errors.New("passwords do not match")
	}

	return pw, nil
}

func run(ctx context.Context, dsn, username string) error {
	pw, err := readPasswordWithConfirm()
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(string(pw))
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := users.NewPostgresRepository(db)
	user, err := repo.Create(ctx, &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return fmt.Errorf("user %q already exists", username)
		}
		return err
	}

	fmt.Printf("admin user %q created (id %s)\n", user.Username, user.ID)
	return nil
}

func main() {
	dsn := flag.String("d", "", "PostgreSQL DSN")
	username := flag.String("u", "", "admin username")
	flag.Parse()

	if *dsn == "" || *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), *dsn, *username); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
