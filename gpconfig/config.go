package gpconfig

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/ismaili-ziad/GP2/graph"
)

const (
	ModuleName = "gp2core"

	OptionMaxNodes           = "max_nodes"
	OptionMaxEdges           = "max_edges"
	OptionMaxIncidentPerNode = "max_incident_per_node"

	// DefaultMaxNodes, DefaultMaxEdges and DefaultMaxIncidentPerNode are
	// zero, meaning "no ceiling" — matching the original runtime's
	// behaviour before a specific build configured one.
	DefaultMaxNodes           = 0
	DefaultMaxEdges           = 0
	DefaultMaxIncidentPerNode = 0
)

// Load resolves graph.Limits from defaults, an optional YAML file at
// configPath (ignored if empty or not found), and environment variables
// prefixed GP2CORE_ (e.g. GP2CORE_MAX_NODES). Environment variables take
// precedence over the file, which takes precedence over the defaults.
func Load(configPath string) (graph.Limits, error) {
	v := viper.New()
	v.SetEnvPrefix(ModuleName)
	v.AutomaticEnv()

	v.SetDefault(OptionMaxNodes, DefaultMaxNodes)
	v.SetDefault(OptionMaxEdges, DefaultMaxEdges)
	v.SetDefault(OptionMaxIncidentPerNode, DefaultMaxIncidentPerNode)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !notFound && !errors.Is(err, fs.ErrNotExist) {
				return graph.Limits{}, err
			}
		}
	}

	return graph.Limits{
		MaxNodes:           v.GetInt(OptionMaxNodes),
		MaxEdges:           v.GetInt(OptionMaxEdges),
		MaxIncidentPerNode: v.GetInt(OptionMaxIncidentPerNode),
	}, nil
}
