// Package config loads ccgeom settings from YAML and CCGEOM_* environment
// variables and builds the slog logger they describe.
//
//	log:
//	  level: info          # debug|info|warn|error
//	  format: text         # text|json
//	builder:
//	  derive_edges: true
//	  derive_half_edges: true
//	store:
//	  max_surfaces: 0      # 0 = unlimited
package config
