package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hex_Deterministic(t *testing.T) {
	assert.Equal(t, SHA256Hex("resume+jd+company+role"), SHA256Hex("resume+jd+company+role"))
	assert.Len(t, SHA256Hex("anything"), 64)
}

func TestSHA256Hex_AnyInputChangeChangesDigest(t *testing.T) {
	base := SHA256Hex("resume" + "jd" + "Acme" + "Backend")

	assert.NotEqual(t, base, SHA256Hex("resume2"+"jd"+"Acme"+"Backend"))
	assert.NotEqual(t, base, SHA256Hex("resume"+"jd2"+"Acme"+"Backend"))
	assert.NotEqual(t, base, SHA256Hex("resume"+"jd"+"Other"+"Backend"))
	assert.NotEqual(t, base, SHA256Hex("resume"+"jd"+"Acme"+"Frontend"))
}
