package main

// Catalog tooling:
//   go run ./cmd/catalog import -out catalog.json page.html card.pdf
//   go run ./cmd/catalog convert -in seed -out catalog.xlsx
//   go run ./cmd/catalog seed-db -in catalog.xlsx

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"chef-backend/internal/recipes"
	"chef-backend/internal/shared/config"
	"chef-backend/internal/shared/storage/db"
	"chef-backend/internal/shared/telemetry"
)

const usage = `usage: catalog <command> [flags]

commands:
  import   -out <file> <page.html|card.pdf>...   build a catalog from recipe pages
  convert  -in <seed|file> -out <file>           rewrite a catalog as .json or .xlsx
  seed-db  -in <seed|file>                       replace the recipes table`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		exitErr(err.Error())
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", usage)
	}
	cmd, rest := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	in := fs.String("in", "seed", "catalog source: seed, or a .json/.xlsx file")
	out := fs.String("out", "", "output catalog file (.json or .xlsx)")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	switch cmd {
	case "import":
		if *out == "" {
			return fmt.Errorf("import: -out is required")
		}
		list, err := importFiles(fs.Args())
		if err != nil {
			return err
		}
		if err := writeCatalog(*out, list); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "imported %d recipes into %s\n", len(list), *out)
	case "convert":
		if *out == "" {
			return fmt.Errorf("convert: -out is required")
		}
		list, err := loadCatalog(ctx, *in)
		if err != nil {
			return err
		}
		if err := writeCatalog(*out, list); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %d recipes to %s\n", len(list), *out)
	case "seed-db":
		list, err := loadCatalog(ctx, *in)
		if err != nil {
			return err
		}
		if err := seedDatabase(ctx, list); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "stored %d recipes\n", len(list))
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
	return nil
}

func seedDatabase(ctx context.Context, list []recipes.Recipe) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	telemetry.Init(telemetry.Config{Level: cfg.LogLevel, Format: "console", Output: os.Stderr})

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultCLIOptions()))
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return recipes.PGSource{DB: sqlDB}.Replace(ctx, list)
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
