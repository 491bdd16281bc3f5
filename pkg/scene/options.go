package scene

// Default primitive dimensions and colors.
const (
	DefaultMemberRadius   = 0.05
	DefaultNodeSize       = 0.2
	DefaultEndpointRadius = 0.1
	DefaultMemberColor    = "#8a9bb0"
	DefaultNodeColor      = "#f2a541"
	DefaultEndpointColor  = "#e4572e"

	// DefaultFOV is the camera's vertical field of view in degrees.
	DefaultFOV  = 50.0
	DefaultNear = 0.1

	// FarFactor scales the scene size into the camera's far plane.
	FarFactor = 100.0

	// MinSceneSize replaces a zero scene size (one point, or all nodes
	// coincident) when placing the camera.
	MinSceneSize = 1.0
)

// Options controls primitive dimensions and colors.
// Zero values take the package defaults.
type Options struct {
	MemberRadius   float64 `toml:"member_radius" json:"member_radius,omitempty"`
	NodeSize       float64 `toml:"node_size" json:"node_size,omitempty"`
	EndpointRadius float64 `toml:"endpoint_radius" json:"endpoint_radius,omitempty"`
	MemberColor    string  `toml:"member_color" json:"member_color,omitempty"`
	NodeColor      string  `toml:"node_color" json:"node_color,omitempty"`
	EndpointColor  string  `toml:"endpoint_color" json:"endpoint_color,omitempty"`
}

// WithDefaults returns o with every zero field replaced by its default.
func (o Options) WithDefaults() Options {
	if o.MemberRadius <= 0 {
		o.MemberRadius = DefaultMemberRadius
	}
	if o.NodeSize <= 0 {
		o.NodeSize = DefaultNodeSize
	}
	if o.EndpointRadius <= 0 {
		o.EndpointRadius = DefaultEndpointRadius
	}
	if o.MemberColor == "" {
		o.MemberColor = DefaultMemberColor
	}
	if o.NodeColor == "" {
		o.NodeColor = DefaultNodeColor
	}
	if o.EndpointColor == "" {
		o.EndpointColor = DefaultEndpointColor
	}
	return o
}
