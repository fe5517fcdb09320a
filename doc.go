/*
Package sluice provides per-identity leaky bucket admission control.

Core (pkg/admission/limiter):
  - Immutable, copy-on-write limiter state
  - Pure admission checks driven by caller-supplied timestamps
  - Read-only bucket inspection

Embeddings (pkg/admission/keeper):
  - Keeper: mutex-guarded owner of the authoritative state
  - Sharded: per-identity sharding for contended workloads
  - MetricsKeeper: Prometheus instrumentation

Example usage:

	import (
		"github.com/vnykmshr/sluice/pkg/admission/keeper"
	)

	k, _ := keeper.New(10, 5.0) // capacity 10, leaks 5 units/sec

	if k.Admit(clientID) {
		// process request
	}
*/
package sluice
