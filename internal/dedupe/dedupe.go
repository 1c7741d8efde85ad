// Package dedupe provides the shared singleflight group used to collapse
// concurrent timeout-resolution triggers. The timeout check is polled from
// board reads, so many requests can observe an expired clock at once; only
// one resolution may run for a given game while the others wait.
package dedupe

import "golang.org/x/sync/singleflight"

// TimeoutGroup deduplicates forced turn resolutions keyed by game code.
var TimeoutGroup singleflight.Group
