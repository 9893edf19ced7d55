package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr error
	}{
		{
			name:  "valid date",
			value: "2020-01-03",
			want:  time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "slashes instead of dashes",
			value:   "2020/01/03",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "missing zero padding",
			value:   "2020-1-3",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "month out of range",
			value:   "2020-13-01",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "trailing garbage",
			value:   "2020-01-03T00:00:00",
			wantErr: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, got.Equal(tt.want))
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name     string
		startRaw string
		endRaw   string
		wantErr  error
	}{
		{
			name:     "valid range",
			startRaw: "2020-01-01",
			endRaw:   "2020-01-10",
		},
		{
			name:     "empty start",
			startRaw: "",
			endRaw:   "2020-01-10",
			wantErr:  ErrEmptyDates,
		},
		{
			name:     "empty end",
			startRaw: "2020-01-01",
			endRaw:   "",
			wantErr:  ErrEmptyDates,
		},
		{
			name:     "malformed start",
			startRaw: "01-01-2020",
			endRaw:   "2020-01-10",
			wantErr:  ErrInvalidFormat,
		},
		{
			name:     "malformed end",
			startRaw: "2020-01-01",
			endRaw:   "10.01.2020",
			wantErr:  ErrInvalidFormat,
		},
		{
			name:     "start equals end",
			startRaw: "2020-01-05",
			endRaw:   "2020-01-05",
			wantErr:  ErrInvertedRange,
		},
		{
			name:     "start after end",
			startRaw: "2020-02-01",
			endRaw:   "2020-01-01",
			wantErr:  ErrInvertedRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ValidateRange(tt.startRaw, tt.endRaw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			// A valid range comes back unchanged.
			require.Equal(t, tt.startRaw, Format(start))
			require.Equal(t, tt.endRaw, Format(end))
		})
	}
}
