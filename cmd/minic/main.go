package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minic-lang/core-compiler/config"
)

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "The MiniC front end",
	Long: `minic checks MiniC source files: it parses them, builds the scoped
symbol table, binds every identifier use to its declaration, and reports
the semantic errors it finds along the way.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfigFor finds the project root above path and loads its minic.toml.
// Outside any project the defaults apply.
func loadConfigFor(path string) (*config.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := abs
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}
	root, err := config.FindProjectRoot(dir)
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(root)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
