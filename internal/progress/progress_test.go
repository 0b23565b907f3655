package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_IncrementTracksPerOutcomeCounts(t *testing.T) {
	r := New("Testing", 3, true)
	r.Increment("written")
	r.Increment("written")
	r.Increment("no-date-source")
	r.Finish()

	counts := r.Counts()
	assert.Equal(t, int64(2), counts["written"])
	assert.Equal(t, int64(1), counts["no-date-source"])
}

func TestReporter_VerboseSuppressesBar(t *testing.T) {
	r := New("Testing", 1, true)
	assert.Nil(t, r.bar)
}

func TestReporter_NonVerboseCreatesBar(t *testing.T) {
	r := New("Testing", 1, false)
	assert.NotNil(t, r.bar)
	r.Finish()
}

func TestPrintSummary_OmitsZeroCounters(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, "Summary:", map[string]int64{
		"written":      3,
		"write-failed": 0,
	})

	out := buf.String()
	assert.Contains(t, out, "written:")
	assert.NotContains(t, out, "write-failed:")
}

func TestPrintSummary_SortsCounterNames(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, "Summary:", map[string]int64{
		"zeta":  1,
		"alpha": 2,
	})

	out := buf.String()
	assert.Less(t, indexOf(out, "alpha:"), indexOf(out, "zeta:"))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
