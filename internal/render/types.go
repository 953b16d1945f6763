// internal/render/types.go
package render

import "github.com/tamzrod/controller-launch/internal/launch"

// Document is the ROS 2 YAML launch file layout.
// Layout only: no semantics.
type Document struct {
	Launch []Entry `yaml:"launch"`
}

// Entry holds exactly one of Arg or Node.
type Entry struct {
	Arg  *ArgEntry  `yaml:"arg,omitempty"`
	Node *NodeEntry `yaml:"node,omitempty"`
}

type ArgEntry struct {
	Name        string `yaml:"name"`
	Default     string `yaml:"default"`
	Description string `yaml:"description,omitempty"`
}

type NodeEntry struct {
	Pkg    string `yaml:"pkg"`
	Exec   string `yaml:"exec"`
	Name   string `yaml:"name"`
	Output string `yaml:"output"`
	Args   string `yaml:"args"`

	// launch conditions; at most one is set
	If     string `yaml:"if,omitempty"`
	Unless string `yaml:"unless,omitempty"`
}

// Writer hands a Description to the host framework.
type Writer interface {
	Write(d launch.Description) error
}
