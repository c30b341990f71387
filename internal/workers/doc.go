/*
Package workers provides utilities for determining optimal worker pool sizes
in containerized environments.

When running in a container, the number of available CPUs may be limited by
cgroup constraints. Go 1.19+ sets GOMAXPROCS from the container CPU limit,
while runtime.NumCPU() still reports the host machine. The helpers here size
pools from GOMAXPROCS so a run inside a 2-CPU cgroup on a 64-core node spawns
2 probe workers, not 64 ffprobe processes.

Typical use:

	// One ffprobe process per available CPU, never more than the
	// number of episodes in the playlist.
	n := workers.ForCPU(len(sidecars))

All functions respect the PODFEED_WORKERS environment variable, allowing
operators to override the automatic calculation:

	PODFEED_WORKERS=4 podfeed -downloads /srv/downloads

All functions are safe for concurrent use.
*/
package workers
