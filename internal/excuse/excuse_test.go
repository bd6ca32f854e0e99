package excuse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_Validate(t *testing.T) {
	valid := Request{
		Category:      "Running Late",
		Tone:          "formal",
		Seriousness:   3,
		RecipientName: "Dr. Chen",
		SenderName:    "Sam",
		ETAWhen:       "I expect to arrive by 3pm.",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("missing recipient", func(t *testing.T) {
		req := valid
		req.RecipientName = ""
		assert.ErrorIs(t, req.Validate(), ErrMissingNames)
	})

	t.Run("missing sender", func(t *testing.T) {
		req := valid
		req.SenderName = ""
		assert.ErrorIs(t, req.Validate(), ErrMissingNames)
	})

	t.Run("seriousness too low", func(t *testing.T) {
		req := valid
		req.Seriousness = 0
		assert.ErrorIs(t, req.Validate(), ErrSeriousnessRange)
	})

	t.Run("seriousness too high", func(t *testing.T) {
		req := valid
		req.Seriousness = 6
		assert.ErrorIs(t, req.Validate(), ErrSeriousnessRange)
	})

	t.Run("seriousness bounds are inclusive", func(t *testing.T) {
		for _, s := range []int{1, 5} {
			req := valid
			req.Seriousness = s
			assert.NoError(t, req.Validate())
		}
	})
}
