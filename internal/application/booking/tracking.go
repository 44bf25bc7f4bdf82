package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const trackingPrefix = "QD"

// TrackingIDGenerator produces public tracking IDs: the "QD" prefix
// followed by nine random digits.
type TrackingIDGenerator interface {
	Generate() (string, error)
}

type RandomTrackingID struct{}

func NewRandomTrackingID() *RandomTrackingID {
	return &RandomTrackingID{}
}

func (RandomTrackingID) Generate() (string, error) {
	max := big.NewInt(1_000_000_000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%09d", trackingPrefix, n), nil
}
