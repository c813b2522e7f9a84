package caltime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildDateTime(t *testing.T) {
	type args struct {
		date string
		tod  string
	}
	tests := []struct {
		name    string
		args    args
		want    Clock
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "normal",
			args:    args{date: "Dec 26 2009", tod: "12:34:56"},
			want:    FromDate(2009, 12, 26).WithTimeOfDay(12, 34, 56),
			wantErr: assert.NoError,
		},
		{
			name:    "space padded day",
			args:    args{date: "Jun  7 2012", tod: "01:02:03"},
			want:    FromDate(2012, 6, 7).WithTimeOfDay(1, 2, 3),
			wantErr: assert.NoError,
		},
		{
			name:    "epoch",
			args:    args{date: "Jan  1 2000", tod: "00:00:00"},
			want:    FromDate(2000, 1, 1),
			wantErr: assert.NoError,
		},
		{
			name:    "unknown month",
			args:    args{date: "Xyz 26 2009", tod: "12:34:56"},
			wantErr: assert.Error,
		},
		{
			name:    "short date",
			args:    args{date: "Dec 2009", tod: "12:34:56"},
			wantErr: assert.Error,
		},
		{
			name:    "bad time separators",
			args:    args{date: "Dec 26 2009", tod: "12.34.56"},
			wantErr: assert.Error,
		},
		{
			name:    "letters in day",
			args:    args{date: "Dec 2x 2009", tod: "12:34:56"},
			wantErr: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBuildDateTime(tt.args.date, tt.args.tod)
			if !tt.wantErr(t, err, fmt.Sprintf("ParseBuildDateTime(%q, %q)", tt.args.date, tt.args.tod)) {
				return
			}
			if err != nil {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBuildDateTimeEpochSeconds(t *testing.T) {
	c, err := ParseBuildDateTime("Jan  1 2000", "00:00:00")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), c.Time2000)
}
