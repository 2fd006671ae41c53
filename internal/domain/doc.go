// Package domain contains the core model for lab: flow samples, friction
// laws, experiments, the series handed to plotting tools, and the inputs and
// results of the oil-property calculators.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML
// or TOML parsing, the filesystem or the terminal. Infra/adapters map into/from
// these types.
package domain
