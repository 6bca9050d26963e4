package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInquiryReferenceShape(t *testing.T) {
	ref := InquiryReference()

	parts := strings.Split(ref, "-")
	assert.Len(t, parts, 2)
	assert.Contains(t, referenceAdjectives, parts[0])
	assert.Contains(t, referenceNouns, parts[1])
}

func TestRandomWordEmptyList(t *testing.T) {
	assert.Equal(t, "", randomWord(nil))
}
