package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikeNeutralizesMetacharacters(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike(`100%`))
	assert.Equal(t, `a\_b`, escapeLike(`a_b`))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
	assert.Equal(t, `plain`, escapeLike(`plain`))
}
