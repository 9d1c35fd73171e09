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
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/isosurf/InputParameters"
	"github.com/notargets/isosurf/isosurface"
	"github.com/notargets/isosurf/mesh/readers"
	"github.com/notargets/isosurf/mesh/writers"
	"github.com/notargets/isosurf/utils"
)

const defaultOutputFile = "iso.stl"

type IsoRun struct {
	GridFile, ScalarsFile string
	OutputFile            string
	IsoValues             []float32
	BlockSize             int // Zero for the extractor default
	ParallelDegree        int // Zero for all CPUs
	Verbose, Profile      bool
}

// IsoCmd represents the iso command
var IsoCmd = &cobra.Command{
	Use:   "iso",
	Short: "Extract iso-surfaces from a volume mesh and write them as surface meshes",
	Long: `
Reads a volume mesh (.msh Gmsh 2.2 or .su2) and its scalar field, extracts the
surface at each iso-value and writes it as .stl or .msh, optionally .zst compressed.
The scalar field is the first $NodeData view of a Gmsh file or a raw float file (-S).

isosurf iso -F mesh.msh -S field.bin -v 0.5 -o surface.stl
isosurf iso -I params.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ir, err := processIsoInput(cmd)
		if err != nil {
			return err
		}
		return RunIso(ir, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(IsoCmd)
	addIsoFlags(IsoCmd)
}

func addIsoFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("gridFile", "F", "", "Grid file to read in Gmsh 2.2 (.msh) or SU2 (.su2) format")
	cmd.Flags().StringP("scalarsFile", "S", "", "Raw little endian float32 or float64 per-vertex scalars, .zst allowed")
	cmd.Flags().Float32SliceP("isoValue", "v", nil, "iso-value(s) to extract, comma separated")
	cmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- GridFile\n\t- IsoValues")
	cmd.Flags().StringP("outputFile", "o", "", "output surface file (.stl or .msh), default "+defaultOutputFile)
	cmd.Flags().Int("blockSize", 0, "elements per work block")
	cmd.Flags().Int("procs", 0, "number of worker goroutines, default all CPUs")
	cmd.Flags().Bool("verbose", false, "print progress")
	cmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
}

// processIsoInput merges the YAML parameters, the config file and the flags,
// later ones taking precedence
func processIsoInput(cmd *cobra.Command) (ir *IsoRun, err error) {
	if err = viper.BindPFlags(cmd.Flags()); err != nil {
		return
	}
	var ip InputParameters.IsoParameters
	if paramsFile := viper.GetString("inputParametersFile"); paramsFile != "" {
		if err = ip.ReadFile(paramsFile); err != nil {
			return
		}
	}
	ir = &IsoRun{
		GridFile:       firstString(viper.GetString("gridFile"), ip.GridFile),
		ScalarsFile:    firstString(viper.GetString("scalarsFile"), ip.ScalarsFile),
		OutputFile:     firstString(viper.GetString("outputFile"), ip.OutputFile, defaultOutputFile),
		IsoValues:      ip.IsoValues,
		BlockSize:      firstInt(viper.GetInt("blockSize"), ip.BlockSize),
		ParallelDegree: firstInt(viper.GetInt("procs"), ip.ParallelDegree),
		Verbose:        viper.GetBool("verbose") || ip.Verbose,
		Profile:        viper.GetBool("profile"),
	}
	if cmd.Flags().Changed("isoValue") {
		if ir.IsoValues, err = cmd.Flags().GetFloat32Slice("isoValue"); err != nil {
			return
		}
	}
	if ir.Verbose && ip.Title != "" {
		ip.Fprint(cmd.OutOrStdout())
	}

	switch {
	case ir.GridFile == "":
		err = fmt.Errorf("must supply a grid file (-F, --gridFile) in .msh or .su2 format")
	case len(ir.IsoValues) == 0:
		err = fmt.Errorf("must supply at least one iso-value (-v, --isoValue) or an input parameters file (-I) with IsoValues")
	}
	return
}

func firstString(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(n ...int) int {
	for _, v := range n {
		if v != 0 {
			return v
		}
	}
	return 0
}

// outputFiles names one output per iso-value: the output file itself for a
// single value, otherwise name_<k> with the extension, and any .zst, kept
func outputFiles(outputFile string, n int) (names []string) {
	if n == 1 {
		return []string{outputFile}
	}
	var (
		zst  = strings.HasSuffix(outputFile, writers.ZstdExt)
		base = strings.TrimSuffix(outputFile, writers.ZstdExt)
		ext  = filepath.Ext(base)
	)
	base = strings.TrimSuffix(base, ext)
	if zst {
		ext += writers.ZstdExt
	}
	for k := 0; k < n; k++ {
		names = append(names, fmt.Sprintf("%s_%d%s", base, k, ext))
	}
	return
}

func RunIso(ir *IsoRun, w io.Writer) error {
	if ir.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	m, err := readers.ReadMeshFile(ir.GridFile)
	if err != nil {
		return err
	}
	if ir.ScalarsFile != "" {
		if err = readers.AttachScalars(m, ir.ScalarsFile); err != nil {
			return err
		}
	}
	if ir.Verbose {
		m.FprintStatistics(w)
		if n := utils.CountNaN(m.Scalars); n != 0 {
			fmt.Fprintf(w, "  NaN scalars: %d, never above an iso-value\n", n)
		}
	}

	opts := []isosurface.Option{
		isosurface.WithBlockSize(ir.BlockSize),
		isosurface.WithParallelDegree(ir.ParallelDegree),
		isosurface.WithVerbose(ir.Verbose),
		isosurface.WithLogger(log.New(w, "", log.LstdFlags)),
	}
	surfaces, err := isosurface.ExtractIsoSurfaces(m, ir.IsoValues, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", ir.GridFile, err)
	}

	names := outputFiles(ir.OutputFile, len(surfaces))
	for k, s := range surfaces {
		if err = writers.WriteMeshFile(names[k], s); err != nil {
			return err
		}
		fmt.Fprintf(w, "iso-value %g: %d triangles, %d vertices -> %s\n",
			ir.IsoValues[k], len(s.Triangles), len(s.Vertices), names[k])
	}
	if ir.Verbose {
		fmt.Fprintln(w, utils.GetMemUsage())
	}
	return nil
}
