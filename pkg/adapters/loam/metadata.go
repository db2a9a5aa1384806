package loam

// NodeMetadata represents the frontmatter of a node document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type NodeMetadata struct {
	// ID overrides the key derived from the file name.
	ID string `json:"id" mapstructure:"id"`

	// Yes and No name the nodes followed for each answer. Leaves set neither.
	Yes string `json:"yes" mapstructure:"yes"`
	No  string `json:"no" mapstructure:"no"`

	// Root marks the node the walk starts from.
	Root bool `json:"root" mapstructure:"root"`

	// General Metadata
	Metadata map[string]string `json:"metadata" mapstructure:"metadata"`
}
