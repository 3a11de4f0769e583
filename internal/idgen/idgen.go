// Package idgen генерирует идентификаторы вида "<unix-ms>-<суффикс>".
// Уникальность только вероятностная, криптостойкость не гарантируется.
package idgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLength = 9

// Generator выдаёт новые идентификаторы
type Generator interface {
	NewID() string
}

// GeneratorFunc адаптирует функцию к Generator
type GeneratorFunc func() string

func (f GeneratorFunc) NewID() string { return f() }

type timestampGenerator struct {
	now func() time.Time
}

// New возвращает генератор на основе текущего времени и случайного UUID
func New() Generator {
	return &timestampGenerator{now: time.Now}
}

func (g *timestampGenerator) NewID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d-%s", g.now().UnixMilli(), random[:suffixLength])
}
