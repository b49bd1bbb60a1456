package save

import "time"

// Status описывает текущее состояние сохранения доски
type Status string

const (
	// StatusIdle — нет активного сохранения; возможно есть несохранённые изменения
	StatusIdle Status = "idle"
	// StatusSaving — попытка сохранения в полёте (включая повторы после ошибок)
	StatusSaving Status = "saving"
	// StatusSaved — последняя попытка завершилась успешно
	StatusSaved Status = "saved"
	// StatusError — попытка провалилась (повторы исчерпаны или flush упал)
	StatusError Status = "error"
)

// State — значение, которое наблюдает UI: статус сохранения, время
// последнего успешного сохранения, ошибка и цель для отката.
// State пересчитывается и рассылается подписчикам на каждом переходе;
// подписчики никогда не мутируют его.
type State struct {
	// LastSavedAt — время последнего подтверждённого сохранения,
	// нулевое если доска ещё не сохранялась этим инстансом.
	LastSavedAt time.Time

	// Err заполнен только в StatusError.
	Err error

	// LastSaved — последние подтверждённо-сохранённые значения полей.
	// Цель для отката: UI может перезаписать локальное состояние этими
	// значениями. Неудавшиеся попытки его не искажают.
	LastSaved Patch

	Status Status

	// HasUnsavedChanges — true, если pending patch непуст.
	HasUnsavedChanges bool
}

// Listener получает State синхронно на каждом переходе.
// Подписчик не должен блокироваться надолго: доставка последовательная.
type Listener func(State)
