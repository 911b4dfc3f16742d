package types

import (
	"gopkg.in/guregu/null.v3"
)

type PurgeCacheRequest struct {
	Name string      `json:"name" validate:"required"`
	Key  null.String `json:"key"`
}
