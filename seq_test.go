package groupx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestGroupBySeq(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	seq := func(yield func(string) bool) {
		for _, s := range []string{"ant", "bee", "cat", "bug"} {
			if !yield(s) {
				return
			}
		}
	}

	grouped := GroupBySeq(seq, func(s string) byte { return s[0] })

	is.Equal([]byte{'a', 'b', 'c'}, grouped.Keys())
	is.Equal([]string{"bee", "bug"}, grouped.AsMap()['b'])
}

func TestCollect(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	seq := func(yield func(string, int) bool) {
		pairs := []struct {
			key string
			val int
		}{
			{"odd", 1}, {"even", 2}, {"odd", 3},
		}
		for _, p := range pairs {
			if !yield(p.key, p.val) {
				return
			}
		}
	}

	grouped := Collect(seq)

	is.Equal([]string{"odd", "even"}, grouped.Keys())
	is.Equal([]int{1, 3}, grouped.AsMap()["odd"])
	is.Equal([]int{2}, grouped.AsMap()["even"])
}

func TestChanValues(t *testing.T) {
	defer goleak.VerifyNone(t)
	is := assert.New(t)

	ch := make(chan int, 4)
	for _, n := range []int{1, 2, 3, 4} {
		ch <- n
	}
	close(ch)

	grouped := GroupBySeq(ChanValues(ch), func(n int) int { return n % 2 })

	is.Equal([]int{1, 0}, grouped.Keys())
	is.Equal([]int{1, 3}, grouped.AsMap()[1])
	is.Equal([]int{2, 4}, grouped.AsMap()[0])
}

func TestChanValuesEarlyStop(t *testing.T) {
	defer goleak.VerifyNone(t)
	is := assert.New(t)

	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	var got []int
	for n := range ChanValues(ch) {
		got = append(got, n)
		if len(got) == 2 {
			break
		}
	}

	is.Equal([]int{1, 2}, got)
}
