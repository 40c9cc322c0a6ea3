package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"
)

var errEmptyRange = errors.New("random range must be positive")

// source draws uniform integers from an entropy reader. Draws are serialized
// so concurrent callers never share a partially consumed read.
type source struct {
	mu sync.Mutex
	r  io.Reader
}

// defaultSource is created on first use and reads from the OS entropy pool.
var defaultSource = sync.OnceValue(func() *source {
	return &source{r: rand.Reader}
})

// intn returns a uniform integer in [0, n).
func (s *source) intn(n int) (int, error) {
	if n <= 0 {
		return 0, errEmptyRange
	}

	s.mu.Lock()
	v, err := rand.Int(s.r, big.NewInt(int64(n)))
	s.mu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

// pick returns a uniformly chosen byte of charset.
func (s *source) pick(charset string) (byte, error) {
	i, err := s.intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}
