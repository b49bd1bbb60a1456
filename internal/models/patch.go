package models

// Patch представляет накопленные несохранённые изменения доски:
// отображение имени поля ("title", "slug", "config", "blocks") в новое
// значение. Сериализуется как тело PATCH-запроса (sparse patch).
type Patch map[string]any

// Clone returns a shallow copy of the patch. Field values are shared;
// callers treat them as immutable once queued.
func (p Patch) Clone() Patch {
	clone := make(Patch, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}
