package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. Command line flags override
// any value set here.
type IsoParameters struct {
	Title          string    `json:"Title"`
	GridFile       string    `json:"GridFile"`
	ScalarsFile    string    `json:"ScalarsFile"`
	OutputFile     string    `json:"OutputFile"`
	IsoValues      []float32 `json:"IsoValues"`
	BlockSize      int       `json:"BlockSize"`
	ParallelDegree int       `json:"ParallelDegree"`
	Verbose        bool      `json:"Verbose"`
}

func (ip *IsoParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ReadFile parses the YAML file at path
func (ip *IsoParameters) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = ip.Parse(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (ip *IsoParameters) Print() {
	ip.Fprint(os.Stdout)
}

func (ip *IsoParameters) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Grid File\n", ip.GridFile)
	if ip.ScalarsFile != "" {
		fmt.Fprintf(w, "[%s]\t\t= Scalars File\n", ip.ScalarsFile)
	}
	fmt.Fprintf(w, "[%s]\t\t= Output File\n", ip.OutputFile)
	fmt.Fprintf(w, "%v\t\t= Iso Values\n", ip.IsoValues)
	if ip.BlockSize != 0 {
		fmt.Fprintf(w, "[%d]\t\t\t= Block Size\n", ip.BlockSize)
	}
	if ip.ParallelDegree != 0 {
		fmt.Fprintf(w, "[%d]\t\t\t= Parallel Degree\n", ip.ParallelDegree)
	}
}
