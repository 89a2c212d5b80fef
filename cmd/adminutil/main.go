// Command adminutil inspects and maintains the marketplace store configured
// through the same environment as the API.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var outputJSON bool

var rootCmd = &cobra.Command{
	Use:           "adminutil",
	Short:         "Maintenance commands for the Agência Maker store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print records as JSON")
	rootCmd.AddCommand(seedCmd, usersCmd, jobsCmd, promoteCertifiedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
