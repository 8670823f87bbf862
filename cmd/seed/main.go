package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/voteboard/voteboard/config"
	"github.com/voteboard/voteboard/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@voteboard.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)

	posts := []struct {
		title, content string
		published      bool
	}{
		{"Hello voteboard", "First post, say hi below.", true},
		{"Pagination demo", "Enough posts here to page through.", true},
		{"Unpublished draft", "Still cooking.", false},
	}
	for _, p := range posts {
		var postID int64
		if err := db.QueryRow(`
			INSERT INTO posts (title, content, published, owner_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, p.title, p.content, p.published, id).Scan(&postID); err != nil {
			log.Fatalf("failed to seed post %q: %v", p.title, err)
		}
		fmt.Printf("seeded post: id=%d title=%q\n", postID, p.title)
	}
}
