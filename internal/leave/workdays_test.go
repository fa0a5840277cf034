package leave_test

import (
	"testing"
	"time"

	"github.com/sohan418/leave-management-backend/internal/leave"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"monday through friday", date(2025, time.January, 6), date(2025, time.January, 10), 5},
		{"weekend only", date(2025, time.January, 11), date(2025, time.January, 12), 0},
		{"full week counts weekdays only", date(2025, time.January, 6), date(2025, time.January, 12), 5},
		{"single weekday", date(2025, time.January, 8), date(2025, time.January, 8), 1},
		{"single saturday", date(2025, time.January, 11), date(2025, time.January, 11), 0},
		{"spanning two weeks", date(2025, time.January, 9), date(2025, time.January, 14), 4},
		{"reversed range", date(2025, time.January, 10), date(2025, time.January, 6), 0},
		{"spanning month boundary", date(2025, time.January, 30), date(2025, time.February, 3), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leave.BusinessDays(tt.start, tt.end))
		})
	}
}
