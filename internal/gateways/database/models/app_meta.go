package models

import "github.com/uptrace/bun"

// AppMeta holds key/value markers such as the schema version.
type AppMeta struct {
	bun.BaseModel `bun:"table:app_meta"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value"`
}
