/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean <case-name>",
	Short: "Remove the output directory of the named simulation case",
	Long: `
Recursively removes simulationCases/<case-name>/. Removing a case that was
never run (or was already cleaned) is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Clean(args[0])
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func Clean(caseName string) (err error) {
	dir := filepath.Join(CasesDir, caseName)
	if err = os.RemoveAll(dir); err != nil {
		return
	}
	fmt.Printf("removed %s\n", dir)
	return
}
