package search

// Registry is a persistent, logically-immutable dominance table: for
// each (node, signature) key, it holds the ordered list of currently
// non-dominated SearchStateRecords (spec.md §4.5). Register never
// mutates the receiver; it returns a new Registry, sharing unrelated
// node buckets with the original via a shallow top-level copy, in the
// same copy-on-write spirit as the teacher's core.Graph.Clone.
type Registry struct {
	byNode map[string]map[SearchStateSignature][]SearchStateRecord
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return Registry{byNode: make(map[string]map[SearchStateSignature][]SearchStateRecord)}
}

// HasSignature reports whether (node, signature) has ever been
// registered, regardless of whether the record that created it has
// since been evicted by a dominating one.
func (r Registry) HasSignature(node string, sig SearchStateSignature) bool {
	bucket, ok := r.byNode[node]
	if !ok {
		return false
	}
	_, ok = bucket[sig]

	return ok
}

// Dominated reports whether any record currently admitted at (node,
// record.Signature) dominates record — a cheap read-only peek the
// engine uses before attempting Register (spec.md §4.8 step 4.d).
func (r Registry) Dominated(node string, record SearchStateRecord) (bool, error) {
	for _, rec := range r.byNode[node][record.Signature] {
		dominated, err := rec.Dominates(record)
		if err != nil {
			return false, err
		}
		if dominated {
			return true, nil
		}
	}

	return false, nil
}

// Register admits newRecord at (node, newRecord.Signature). It is
// rejected (admitted=false, registry unchanged) if any currently-admitted
// record at that key dominates it. Otherwise it is admitted, any
// records it itself dominates are evicted, and delta is 1 iff the
// (node, signature) key did not exist before this call.
func (r Registry) Register(node string, newRecord SearchStateRecord) (reg Registry, admitted bool, delta int, err error) {
	sig := newRecord.Signature

	existingBucket := r.byNode[node]
	_, keyExisted := existingBucket[sig]
	existing := existingBucket[sig]

	for _, rec := range existing {
		dominated, derr := rec.Dominates(newRecord)
		if derr != nil {
			return Registry{}, false, 0, derr
		}
		if dominated {
			return r, false, 0, nil
		}
	}

	survivors := make([]SearchStateRecord, 0, len(existing)+1)
	for _, rec := range existing {
		dominatedByNew, derr := newRecord.Dominates(rec)
		if derr != nil {
			return Registry{}, false, 0, derr
		}
		if !dominatedByNew {
			survivors = append(survivors, rec)
		}
	}
	survivors = append(survivors, newRecord)

	newByNode := make(map[string]map[SearchStateSignature][]SearchStateRecord, len(r.byNode))
	for k, v := range r.byNode {
		newByNode[k] = v
	}
	newNodeBucket := make(map[SearchStateSignature][]SearchStateRecord, len(existingBucket)+1)
	for k, v := range existingBucket {
		newNodeBucket[k] = v
	}
	newNodeBucket[sig] = survivors
	newByNode[node] = newNodeBucket

	delta = 0
	if !keyExisted {
		delta = 1
	}

	return Registry{byNode: newByNode}, true, delta, nil
}

// Snapshot returns a read-only copy of the registry's contents, keyed by
// node then signature, for tests and diagnostic tooling (mirrors the
// teacher's core.Graph.Stats()).
func (r Registry) Snapshot() map[string]map[SearchStateSignature][]SearchStateRecord {
	out := make(map[string]map[SearchStateSignature][]SearchStateRecord, len(r.byNode))
	for node, bucket := range r.byNode {
		b := make(map[SearchStateSignature][]SearchStateRecord, len(bucket))
		for sig, recs := range bucket {
			b[sig] = append([]SearchStateRecord(nil), recs...)
		}
		out[node] = b
	}

	return out
}
