// Package utils holds small helpers with no better home.
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var referenceAdjectives = []string{
	"amber",
	"bright",
	"calm",
	"cedar",
	"coastal",
	"gentle",
	"golden",
	"juniper",
	"mellow",
	"misty",
	"quiet",
	"rustic",
	"sunny",
	"tidal",
	"wandering",
	"willow",
}

var referenceNouns = []string{
	"anchor",
	"bell",
	"compass",
	"garden",
	"harbor",
	"hearth",
	"lantern",
	"meadow",
	"orchard",
	"path",
	"saddle",
	"stove",
	"terrace",
	"tide",
	"trail",
	"valley",
}

// InquiryReference returns a short adjective-noun code shown to the guest
// when a booking inquiry is submitted, so a follow-up call has something
// to refer to.
func InquiryReference() string {
	return fmt.Sprintf("%s-%s", randomWord(referenceAdjectives), randomWord(referenceNouns))
}

func randomWord(list []string) string {
	if len(list) == 0 {
		return ""
	}
	limit := big.NewInt(int64(len(list)))
	idx, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return list[0]
	}
	return list[int(idx.Int64())]
}
