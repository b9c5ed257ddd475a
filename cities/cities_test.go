package cities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBboxString(t *testing.T) {
	lahore := All[0]
	assert.Equal(t, "Lahore", lahore.Name)
	assert.Equal(t, "31.35,74.15,31.65,74.45", lahore.BboxString())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"Lahore", "Karachi", "Islamabad", "Faisalabad", "Rawalpindi", "Multan",
	}, Names())
}
