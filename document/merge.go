package document

// DeepMerge combines overrides with target and returns the merged document.
//
// When the override value for a key is a mapping, it is merged recursively
// into the target value for that key; a missing or non-mapping target value
// is treated as an empty mapping. Any other override value replaces the
// target value wholesale, sequences included.
//
// The result shares no mutable structure with either argument, so a document
// already handed out (for example a cached base locale document) is never
// changed by a later merge that used it as the target.
func DeepMerge(target, overrides Document) Document {
	if overrides.kind != KindMapping {
		return overrides.Clone()
	}

	merged := make(map[string]Document, len(target.fields)+len(overrides.fields))

	if target.kind == KindMapping {
		for key, value := range target.fields {
			merged[key] = value.Clone()
		}
	}

	for key, value := range overrides.fields {
		if value.kind == KindMapping {
			merged[key] = DeepMerge(merged[key], value)
		} else {
			merged[key] = value.Clone()
		}
	}

	return Document{kind: KindMapping, fields: merged}
}
