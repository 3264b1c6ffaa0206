package libertem

import "encoding/json"

// Result is one artifact computed by the backend for a job — typically a
// rendered channel of an analysis. The payload is opaque to the tracking
// layer: it is carried through events and snapshots untouched.
type Result struct {
	// Name identifies the analysis channel this artifact belongs to.
	Name string `json:"name,omitempty" msgpack:"name,omitempty"`

	// Data is the artifact payload as delivered by the channel.
	Data json.RawMessage `json:"data,omitempty" msgpack:"data,omitempty"`
}
