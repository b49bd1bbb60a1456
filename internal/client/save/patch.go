package save

import "github.com/iudanet/boardkeeper/internal/models"

// Patch — несохранённые изменения доски (см. models.Patch).
// Повторные изменения одного поля схлопываются (last-write-wins).
type Patch = models.Patch

// merge объединяет patches слева направо: более поздние значения
// перекрывают более ранние. Используется и для накопления изменений,
// и для восстановления неудавшегося patch под текущими правками
// (merge(failed, pending) — свежие правки побеждают).
func merge(patches ...Patch) Patch {
	result := Patch{}
	for _, p := range patches {
		for k, v := range p {
			result[k] = v
		}
	}
	return result
}
