// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package cycle

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Limit int

const (
	INFINITY Limit = math.MaxInt32
)

// UntilError calls f until it succeeds or attempts are exhausted. The wait
// between attempts doubles every retry, starting from interval.
func UntilError(f func() error, interval time.Duration, attempts Limit, log *logrus.Logger) error {
	counter := Limit(1)
	if attempts < 1 {
		attempts = 1
	}
	wait := interval
	for {
		err := f()
		if err == nil {
			return nil
		}
		if counter >= attempts {
			return errors.Wrapf(err, "gave up after %d attempts", counter)
		}
		log.Errorf("attempt %d of %d failed, retrying in %s: %+v", counter, attempts, wait, err)
		counter++
		time.Sleep(wait)
		wait *= 2
	}
}
