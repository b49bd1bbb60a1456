package models

import "time"

// Block представляет один блок контента на доске.
// Блоки упорядочены по Position; содержимое блока хранится в Props
// как произвольная JSON-структура (текст, ссылки, стили и т.д.).
type Block struct {
	Props    map[string]any `json:"props,omitempty"`
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Position int            `json:"position"`
}

// Board представляет доску — единицу редактируемого контента.
// Доска идентифицируется стабильным ID; Slug используется в публичных URL.
type Board struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Config    map[string]any `json:"config"`
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Blocks    []Block        `json:"blocks"`
	Version   int64          `json:"version"`
}

// BoardPatch представляет частичное обновление доски.
// Pointer-поля отличают "не передано" (nil) от "установить в пустое значение".
// Config и Blocks заменяются целиком, если переданы.
type BoardPatch struct {
	Title  *string
	Slug   *string
	Config map[string]any
	Blocks []Block
}

// IsEmpty reports whether the patch carries no changes.
func (p *BoardPatch) IsEmpty() bool {
	return p.Title == nil && p.Slug == nil && p.Config == nil && p.Blocks == nil
}

// Apply применяет patch к доске. Version и UpdatedAt обновляет вызывающая
// сторона (storage), чтобы время и версия были согласованы с записью.
func (b *Board) Apply(p *BoardPatch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Slug != nil {
		b.Slug = *p.Slug
	}
	if p.Config != nil {
		b.Config = p.Config
	}
	if p.Blocks != nil {
		b.Blocks = p.Blocks
	}
}
