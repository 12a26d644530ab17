// SPDX-License-Identifier: MIT
// Command ccgeom classifies (V,E,F) triples against the Platonic catalog and
// materializes canonical solids through the registry and the transactional
// builder.
//
//	ccgeom classify 12 30 20
//	ccgeom catalog
//	ccgeom solid icosahedron --json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
