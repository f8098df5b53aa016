package types

// KVStore is the provable key/value store owned by the host (spec §2,
// "Host Context (external)"). Keys are UTF-8 strings with "/" as a path
// separator, as enumerated in spec §6. Iterate must visit keys in
// lexicographic order: every commitment-affecting consumer of Iterate
// depends on that to stay deterministic across replicas.
type KVStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
	Has(key string) bool
	// Iterate calls fn for every key with the given prefix, in
	// lexicographic key order, until fn returns false.
	Iterate(prefix string, fn func(key string, value []byte) bool)
}

// Reader is the narrow, read-only capability every validate-phase handler
// receives. It collapses the source's per-subsystem "XReader" traits
// (ClientReader, ConnectionReader, ChannelReader, PortReader, ...) into one
// host-level capability; domain keepers layer their own typed read methods
// on top of it.
type Reader interface {
	Store() KVStore
	// CurrentHeight is this chain's own height, used e.g. to check a
	// packet has not already timed out on receive.
	CurrentHeight() Height
	// CurrentTimestamp is this chain's own consensus timestamp in
	// nanoseconds since the Unix epoch.
	CurrentTimestamp() Timestamp
	// Hash is the host-injected hash function used for commitment
	// construction. The canonical binding is SHA-256 (spec §6).
	Hash(data []byte) []byte
}

// Keeper extends Reader with the mutation capability every execute-phase
// handler receives: writing to the store and emitting events. There is
// deliberately no "delete everything" or transactional API here -- atomicity
// of the (validate, execute) pair and rollback-on-infrastructure-failure is
// the host's responsibility (spec §5), not this engine's.
type Keeper interface {
	Reader
	EmitEvent(e Event)
	EmitEvents(es ...Event)
}
