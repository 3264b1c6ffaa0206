package libertem

import "github.com/w-markus/LiberTEM/id"

// ID is the identifier type for client-assigned entity ids.
type ID = id.ID

// Prefix identifies the entity type encoded in a TypeID.
type Prefix = id.Prefix
