package symmetry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentUse(t *testing.T) {
	want, err := Enumerate(4)
	require.NoError(t, err)
	layouts := make([]*Layout, len(want))
	for i, c := range want {
		layouts[i] = mustLayout(t, c, 3)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	report := func(err error) {
		select {
		case errs <- err:
		default:
		}
	}
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Enumerate(4)
			if err != nil {
				report(err)
				return
			}
			for i := range got {
				if !got[i].Equal(want[i]) {
					report(assert.AnError)
					return
				}
			}
			for _, l := range layouts {
				forEachTuple(4, 3, func(tuple []int) {
					if _, err := l.Rank(tuple...); err != nil {
						report(err)
					}
				})
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
