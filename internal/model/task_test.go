package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", in: "2024-03-05T10:00:00Z", want: want},
		{name: "rfc3339 with offset", in: "2024-03-05T07:00:00-03:00", want: want},
		{name: "without zone", in: "2024-03-05T10:00:00", want: want},
		{name: "date only", in: "2024-03-05", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "minimum date", in: "0001-01-01T00:00:00", want: time.Time{}},
		{name: "minimum date with offset", in: "0001-01-01T00:00:00-03:00", want: time.Time{}},
		{name: "minimum date only", in: "0001-01-01", want: time.Time{}},
		{name: "garbage", in: "ontem", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
			assert.Equal(t, tt.want.IsZero(), got.IsZero())
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), end)
}

func TestTaskFilter_Matches(t *testing.T) {
	task := Task{
		ID:     1,
		Title:  "Comprar pão",
		Date:   time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		Status: StatusInProgress,
	}

	title := "Comprar pão"
	other := "Lavar louça"
	morning := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	night := time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	inProgress := StatusInProgress
	done := StatusDone

	assert.True(t, TaskFilter{}.Matches(task))
	assert.True(t, TaskFilter{Title: &title}.Matches(task))
	assert.False(t, TaskFilter{Title: &other}.Matches(task))
	assert.True(t, TaskFilter{Day: &morning}.Matches(task))
	assert.True(t, TaskFilter{Day: &night}.Matches(task))
	assert.False(t, TaskFilter{Day: &nextDay}.Matches(task))
	assert.True(t, TaskFilter{Status: &inProgress}.Matches(task))
	assert.False(t, TaskFilter{Status: &done}.Matches(task))
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(StatusDone)
	require.NoError(t, err)
	assert.JSONEq(t, `"Finalizado"`, string(data))

	var s Status
	require.NoError(t, json.Unmarshal([]byte(`"emandamento"`), &s))
	assert.Equal(t, StatusInProgress, s)

	require.NoError(t, json.Unmarshal([]byte(`2`), &s))
	assert.Equal(t, StatusDone, s)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"Cancelado"`), &s), ErrInvalidStatus)
	assert.ErrorIs(t, json.Unmarshal([]byte(`7`), &s), ErrInvalidStatus)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Pendente")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	s, err = ParseStatus("1")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = ParseStatus("-1")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
