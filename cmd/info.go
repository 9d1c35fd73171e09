/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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

	"github.com/spf13/cobra"

	"github.com/notargets/isosurf/mesh/readers"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print statistics of a mesh file",
	RunE: func(cmd *cobra.Command, args []string) error {
		gridFile, _ := cmd.Flags().GetString("gridFile")
		scalarsFile, _ := cmd.Flags().GetString("scalarsFile")
		if gridFile == "" {
			return fmt.Errorf("must supply a grid file (-F, --gridFile) in .msh or .su2 format")
		}
		m, err := readers.ReadMeshFile(gridFile)
		if err != nil {
			return err
		}
		if scalarsFile != "" {
			if err = readers.AttachScalars(m, scalarsFile); err != nil {
				return err
			}
		}
		m.FprintStatistics(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in Gmsh 2.2 (.msh) or SU2 (.su2) format")
	InfoCmd.Flags().StringP("scalarsFile", "S", "", "Raw little endian float32 or float64 per-vertex scalars")
}
