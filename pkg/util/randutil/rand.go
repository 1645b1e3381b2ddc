// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package randutil

import (
	"context"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/dynarray/pkg/util/log"
)

// envSeed names the environment variable that fixes the seed used by
// NewTestRand, so that a failing randomized test can be replayed.
const envSeed = "DYNARRAY_RANDOM_SEED"

// NewPseudoSeed generates a seed from the current time.
func NewPseudoSeed() int64 {
	return time.Now().UnixNano()
}

// NewPseudoRand returns an instance of math/rand.Rand seeded from the
// current time, along with the seed.
func NewPseudoRand() (*rand.Rand, int64) {
	seed := NewPseudoSeed()
	return rand.New(rand.NewSource(seed)), seed
}

// NewTestRand returns an instance of math/rand.Rand seeded from the
// DYNARRAY_RANDOM_SEED environment variable if it is set, and from the
// current time otherwise. The seed is logged so the run can be reproduced.
func NewTestRand() (*rand.Rand, int64) {
	seed := NewPseudoSeed()
	if s, ok := os.LookupEnv(envSeed); ok {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = parsed
		}
	}
	log.InfofDepth(context.Background(), 1, "random seed: %d (set %s to reproduce)", seed, envSeed)
	return rand.New(rand.NewSource(seed)), seed
}
