package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorage(t *testing.T) {
	now := time.Unix(100, 0)

	s := NewStorage()
	s.now = func() time.Time { return now }

	assert.Nil(t, s.Get("a"))

	s.Set("a", []byte("content"), time.Second)
	assert.Equal(t, []byte("content"), s.Get("a"))

	now = now.Add(2 * time.Second)
	assert.Nil(t, s.Get("a"))

	s.Set("b", []byte("b"), time.Second)
	assert.Len(t, s.items, 1)
}
