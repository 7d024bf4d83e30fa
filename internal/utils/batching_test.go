package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchBufferAddAndClear(t *testing.T) {
	buf := NewBatchBuffer[string]()
	assert.False(t, buf.HasData())
	assert.Equal(t, 0, buf.Size())

	buf.Add("a")
	buf.Add("b")
	assert.True(t, buf.HasData())
	assert.Equal(t, 2, buf.Size())

	got := buf.GetAndClear()
	assert.Equal(t, []string{"a", "b"}, got)
	assert.False(t, buf.HasData())
	assert.Empty(t, buf.GetAndClear())
}

func TestBatchBufferConcurrentAdds(t *testing.T) {
	buf := NewBatchBuffer[int]()
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				buf.Add(j)
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	assert.Equal(t, 400, buf.Size())
}
