// Package domain contains the core domain model for recsort.
//
// The domain is persistence-agnostic: it does not depend on YAML parsing or the
// filesystem. Infra/adapters map into/from these types.
package domain
