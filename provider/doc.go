// Package provider implements a small generic provider framework for
// swappable decode backends.
//
// It provides a registry for managing multiple backend implementations
// with factory-based instantiation and availability checking:
//
//	reg := provider.NewRegistry[decoder.Engine]()
//	reg.RegisterFactory("sphinxd", sphinxd.Factory())
//	engine, err := reg.Create("sphinxd", cfg)
package provider
