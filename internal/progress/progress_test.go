package progress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDisabledStageCountsSilently tests that a disabled stage counts but writes nothing.
func TestDisabledStageCountsSilently(t *testing.T) {
	var buf bytes.Buffer
	s := NewStageWriter(&buf, "size", 3, false)

	s.Record(true)
	s.Record(false)
	s.Finish()

	assert.Equal(t, 2, s.Checked())
	assert.Equal(t, 1, s.Kept())
	assert.Empty(t, buf.String())
}

// TestFinishPrintsSummary tests that an enabled stage ends with its counts.
func TestFinishPrintsSummary(t *testing.T) {
	var buf bytes.Buffer
	s := NewStageWriter(&buf, "folders", 2, true)

	s.Record(true)
	s.Record(true)
	s.Finish()
	assert.Contains(t, buf.String(), "✔ folders: checked 2/2, kept 2 in ")
}

// TestRecordConcurrent tests that counts survive concurrent workers.
func TestRecordConcurrent(t *testing.T) {
	s := NewStageWriter(&bytes.Buffer{}, "size", 400, true)

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				s.Record((i+w)%2 == 0)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 400, s.Checked())
	assert.Equal(t, 200, s.Kept())
}
