package decoder

import "github.com/kbukum/decodekit/provider"

// NewRegistry creates a new provider registry for decode engines.
func NewRegistry() *provider.Registry[Engine] {
	return provider.NewRegistry[Engine]()
}
