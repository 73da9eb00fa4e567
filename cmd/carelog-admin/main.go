package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/wrenfield/carelog/internal/cli"
)

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", envOrDefault("DB_PATH", filepath.Join("data", "carelog.db")), "path to the sqlite database")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "reset-password":
		if len(args) != 2 {
			err = fmt.Errorf("usage: carelog-admin reset-password <email>")
		} else {
			err = cli.RunResetPasswordCommand(*dbPath, args[1])
		}
	case "list-users":
		err = cli.RunListUsersCommand(*dbPath)
	default:
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: carelog-admin [-db path] <command>")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  reset-password <email>   set a temporary password for an account")
	fmt.Fprintln(os.Stderr, "  list-users               list registered accounts")
}

func envOrDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
