package pkg

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"math/rand"
	"time"
)

const upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateCredentials derives a (candidate_id, access_code) pair from the
// company id and an issuance timestamp. The same inputs always produce the
// same pair, so a retried request re-issues identical codes instead of
// minting new ones. SHA-256 is the mixing step: timestamps even microseconds
// apart seed uncorrelated output.
//
// These codes are a convenience, not a secret: anyone who knows the company
// id and can guess the timestamp can regenerate them.
func GenerateCredentials(companyID string, issuedAt time.Time) (candidateID, accessCode string) {
	sum := sha256.Sum256([]byte(companyID + issuedAt.Format(time.RFC3339)))

	// low 8 decimal digits of the digest interpreted as an integer
	seed := new(big.Int).Mod(
		new(big.Int).SetBytes(sum[:]),
		big.NewInt(100_000_000),
	).Int64()

	rng := rand.New(rand.NewSource(seed))

	candidateID = randLetters(rng, 4) + fmt.Sprintf("%d", rng.Intn(1000))
	accessCode = randLetters(rng, 3) + fmt.Sprintf("%03d", rng.Intn(1000))
	return candidateID, accessCode
}

func randLetters(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = upper[rng.Intn(len(upper))]
	}
	return string(b)
}
