//go:build !protogen

package catalog

// NewGRPCProvider is compiled out without the protogen tag; callers fall
// back to the snapshot read model.
func NewGRPCProvider(_ string) (Provider, error) {
	return nil, nil
}
