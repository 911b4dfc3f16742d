package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name string `validate:"required,min=2"`
	Role string `validate:"required,oneof=ADMIN VETERINARIO ESTAGIARIO"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, validateStruct(&sampleRequest{Name: "Ana", Role: "ADMIN"}))
	})

	t.Run("violations are translated", func(t *testing.T) {
		violations := validateStruct(&sampleRequest{Name: "A", Role: "DONO"})
		require.Len(t, violations, 2)

		byTag := map[string]*ErrorResponse{}
		for _, v := range violations {
			byTag[v.Violation] = v
		}
		require.Contains(t, byTag, "min")
		require.Contains(t, byTag, "oneof")
		assert.NotEmpty(t, byTag["min"].Message)
		assert.Contains(t, byTag["min"].Field, "Name")
	})
}
