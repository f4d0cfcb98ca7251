package model

/* =========================
   BOOK
   ========================= */

// Book is one record of the collection. The schema is open: beyond id,
// title, author and publishedYear a client may attach arbitrary keys and
// they are stored verbatim, so the record is a plain JSON object rather
// than a closed struct.
type Book map[string]any

// ID returns the assigned id, or "" when the record has none (or a
// non-string one).
func (b Book) ID() string {
	id, _ := b["id"].(string)
	return id
}

func (b Book) SetID(id string) {
	b["id"] = id
}

// Clone returns a shallow copy, so store internals never escape to callers.
func (b Book) Clone() Book {
	out := make(Book, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Merge overlays the supplied fields onto a copy of b: same-named keys are
// overwritten, everything else is preserved.
func (b Book) Merge(fields Book) Book {
	out := b.Clone()
	for k, v := range fields {
		out[k] = v
	}
	return out
}
