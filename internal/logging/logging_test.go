package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, Setup(false).Level)
	assert.Equal(t, logrus.DebugLevel, Setup(true).Level)
}
