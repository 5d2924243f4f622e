// Command dbtool bootstraps the campaign history schema. It is a one-shot
// migration helper; the API server never creates tables itself.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS campaigns (
	id            UUID PRIMARY KEY,
	brand_name    TEXT NOT NULL,
	industry      TEXT NOT NULL DEFAULT '',
	theme         TEXT NOT NULL DEFAULT '',
	headline_text TEXT NOT NULL,
	visual_style  TEXT NOT NULL DEFAULT '',
	brand_color   TEXT NOT NULL DEFAULT '',
	prompt        TEXT NOT NULL,
	caption       TEXT NOT NULL DEFAULT '',
	image_bytes   INTEGER NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS campaigns_created_at_idx ON campaigns (created_at DESC);
`

func main() {
	_ = godotenv.Load()

	drop := flag.Bool("drop", false, "drop the campaigns table before creating it")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Fprintln(os.Stderr, "ping database:", err)
		os.Exit(1)
	}

	if *drop {
		if _, err := db.Exec(`DROP TABLE IF EXISTS campaigns`); err != nil {
			fmt.Fprintln(os.Stderr, "drop table:", err)
			os.Exit(1)
		}
		fmt.Println("dropped campaigns table")
	}

	if _, err := db.Exec(schema); err != nil {
		fmt.Fprintln(os.Stderr, "apply schema:", err)
		os.Exit(1)
	}
	fmt.Println("campaigns schema ready")
}
