// Command launchpage serves the landing page generator API and the studio UI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "launchpage",
	Short: "AI landing page copy and hero image generator",
	Long:  "LaunchPage Studio turns a short product brief into landing page copy, raw HTML and a hero illustration using a hosted AI provider.",
}

func main() {
	// Load .env before viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		// A missing .env is normal outside development.
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
