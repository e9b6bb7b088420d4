package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minic-lang/core-compiler/compiler"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and name-resolve a MiniC source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFor(args[0])
		if err != nil {
			return err
		}
		comp := compiler.NewCompiler(cfg)
		_, ctx, err := comp.CheckFile(args[0])
		if ctx != nil {
			ctx.Diagnostics.Print()
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", args[0])
		return nil
	},
}
