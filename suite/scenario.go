package suite

import (
	"fmt"

	"github.com/ghodss/yaml"
)

type Target string

const (
	KernelPoint    Target = "kernel-point"
	GradientPoint  Target = "gradient-point"
	KernelMoment   Target = "kernel-moment"
	GradientMoment Target = "gradient-moment"
)

// Scenario is one verification case: a kernel family instantiated at a
// dimension and smoothing length, probed either at a point or through a
// moment integral, with expected values and decimal-places budgets
// per reported component
type Scenario struct {
	Name       string     `yaml:"Name"`
	Family     string     `yaml:"Family"`
	Dim        int        `yaml:"Dim"`
	H          float64    `yaml:"H"`
	Target     Target     `yaml:"Target"`
	Orders     [3]int     `yaml:"Orders"`
	Ref        [3]float64 `yaml:"Ref"`
	Bounds     [2]float64 `yaml:"Bounds"`     // 1D only
	Resolution int        `yaml:"Resolution"` // 2D/3D only
	Sep        [3]float64 `yaml:"Sep"`        // point targets: offset of the evaluation point from Ref
	Expected   []float64  `yaml:"Expected"`
	Places     []int      `yaml:"Places"`
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s [%s %dD h=%g %s]", s.Name, s.Family, s.Dim, s.H, s.Target)
}

// ScenarioFile is a YAML-loadable scenario catalog override
type ScenarioFile struct {
	Title     string     `yaml:"Title"`
	Scenarios []Scenario `yaml:"Scenarios"`
}

func (sf *ScenarioFile) Parse(data []byte) error {
	return yaml.Unmarshal(data, sf)
}
