package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"funneld/internal/di"
	"funneld/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	debug := flag.Bool("debug", false, "enable debug mode (console logging)")
	flag.Parse()

	// Optional .env with SMTP credentials, kept out of the config file.
	_ = godotenv.Load()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "funneld: %s\n", err)
		os.Exit(1)
	}
}
